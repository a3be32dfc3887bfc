//go:build !unix

package export

// Directories cannot be fsynced on non-Unix platforms; renames are left to the OS.
func syncDir(dir string) error { return nil }
