package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/rook-computer/appicon/internal/render"
)

var ErrEmptySet = errors.New("nothing to export: rendered set is empty")

// StandardSizes are the Windows icon sizes every exported container should carry.
var StandardSizes = []int{16, 32, 48, 256}

// filePerm is the mode for new outputs before the process umask applies.
const filePerm = 0644

// Files names the two outputs written by Write.
type Files struct {
	ICO string
	PNG string
}

// DefaultFiles returns the standard output names.
func DefaultFiles() Files {
	return Files{ICO: "app_icon.ico", PNG: "app_icon.png"}
}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Encode serializes the whole set into an ICO container and the primary
// canvas alone into a PNG. Nothing is written to disk.
func Encode(set render.RenderedSet) (icoData []byte, pngData []byte, err error) {
	primary := set.Primary()
	if primary == nil {
		return nil, nil, ErrEmptySet
	}

	var icoBuf bytes.Buffer
	if err := ico.EncodeAll(&icoBuf, set.Images()); err != nil {
		return nil, nil, fmt.Errorf("encode ico: %w", err)
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, primary); err != nil {
		return nil, nil, fmt.Errorf("encode png: %w", err)
	}
	return icoBuf.Bytes(), pngBuf.Bytes(), nil
}

// MissingStandardSizes returns the StandardSizes absent from set.
func MissingStandardSizes(set render.RenderedSet) []int {
	have := make(map[int]bool, len(set))
	for _, s := range set.Sizes() {
		have[s] = true
	}
	var missing []int
	for _, s := range StandardSizes {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// Write encodes set and writes both outputs into dir, replacing existing files.
// Both payloads are encoded before either target is touched, and the directory
// is synced once both are renamed into place.
func Write(dir string, files Files, set render.RenderedSet, l logger) error {
	icoData, pngData, err := Encode(set)
	if err != nil {
		logErr(l, "encode failed: %v", err)
		return err
	}
	if missing := MissingStandardSizes(set); len(missing) > 0 && l != nil {
		l.Infof("export", "%s lacks standard sizes %v", files.ICO, missing)
	}
	if err := writeFileAtomic(filepath.Join(dir, files.ICO), icoData); err != nil {
		logErr(l, "write %s failed: %v", files.ICO, err)
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, files.PNG), pngData); err != nil {
		logErr(l, "write %s failed: %v", files.PNG, err)
		return err
	}
	if err := syncDir(dir); err != nil {
		logErr(l, "sync %s failed: %v", dir, err)
		return err
	}
	if l != nil {
		l.Infof("export", "wrote %s (%d bytes, %d images) and %s (%d bytes)", files.ICO, len(icoData), len(set), files.PNG, len(pngData))
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
// The temp file is created with filePerm so the umask shapes the final mode.
func writeFileAtomic(path string, data []byte) error {
	tmpName := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%d.tmp", filepath.Base(path), os.Getpid()))
	tmp, err := os.OpenFile(tmpName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func logErr(l logger, format string, args ...interface{}) {
	if l != nil {
		l.Errorf("export", format, args...)
	}
}
