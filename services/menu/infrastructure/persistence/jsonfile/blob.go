// Package jsonfile stores the menu document as a JSON file on local disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// Blob reads and overwrites a single file. Writes go straight to the target
// path, so a crash mid-write can leave a truncated file behind.
type Blob struct {
	path string
}

// New returns a Blob for the file at path.
func New(path string) *Blob {
	return &Blob{path: path}
}

// Path returns the file location.
func (b *Blob) Path() string {
	return b.path
}

func (b *Blob) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}
	return data, nil
}

func (b *Blob) Store(_ context.Context, data []byte) error {
	if err := os.WriteFile(b.path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}
	return nil
}

func (b *Blob) CreateIfAbsent(_ context.Context, data []byte) (bool, error) {
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(b.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create %s: %w", b.path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write %s: %w", b.path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", b.path, err)
	}
	return true, nil
}

// Ping checks that the file still exists.
func (b *Blob) Ping(_ context.Context) error {
	if _, err := os.Stat(b.path); err != nil {
		return fmt.Errorf("stat %s: %w", b.path, err)
	}
	return nil
}
