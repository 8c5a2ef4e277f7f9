package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV stores each key as <dir>/<key>.json.
type FileKV struct {
	dir string
}

// NewFileKV returns a FileKV rooted at dir. The directory is created on
// first write with mode 0700.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, errors.New("file storage: empty directory")
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("file storage: invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Set writes to a temp file in the same directory and renames it over the
// target, so readers never see a partial value.
func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("file storage: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file storage: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("file storage: %w", err)
	}
	return nil
}

func (f *FileKV) Close() error { return nil }
