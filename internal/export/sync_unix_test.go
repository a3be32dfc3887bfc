//go:build unix

package export

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSyncDir(t *testing.T) {
	if err := syncDir(t.TempDir()); err != nil {
		t.Fatalf("syncDir: %v", err)
	}
	if err := syncDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("syncDir succeeded on a missing directory")
	}
}

func TestWriteHonorsUmask(t *testing.T) {
	tests := []struct {
		umask int
		want  os.FileMode
	}{
		{0o022, 0o644},
		{0o077, 0o600},
	}
	for _, tt := range tests {
		old := unix.Umask(tt.umask)
		dir := t.TempDir()
		err := Write(dir, DefaultFiles(), renderDefault(t), nil)
		unix.Umask(old)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"app_icon.ico", "app_icon.png"} {
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				t.Fatal(err)
			}
			if got := info.Mode().Perm(); got != tt.want {
				t.Errorf("umask %#o: %s mode = %#o, want %#o", tt.umask, name, got, tt.want)
			}
		}
	}
}
