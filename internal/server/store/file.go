package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tripvault/internal/filex"
)

// FileBackend stores each collection as one JSON document in a data
// directory, e.g. db/users.json. Replacement goes through a temp file and
// rename so readers never see a torn write.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	return &FileBackend{dir: abs}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) Load(_ context.Context, name string) ([]byte, error) {
	raw, err := os.ReadFile(b.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return raw, nil
}

func (b *FileBackend) Replace(_ context.Context, name string, data []byte) error {
	return filex.WriteAtomic(b.path(name), data, 0o660)
}
