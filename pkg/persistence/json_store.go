package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileBackend keeps every document as a JSON file inside dir.
// Names are joined onto dir as is; there is no escaping protection.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) Location(name string) string {
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) Read(name string) ([]byte, bool, error) {
	path := b.Location(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w: %w", path, ErrIO, err)
	}

	return data, true, nil
}

func (b *FileBackend) Write(name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store dir %s: %w: %w", b.dir, ErrIO, err)
	}

	path := b.Location(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w: %w", path, ErrIO, err)
	}

	return nil
}

func (b *FileBackend) List() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w: %w", b.dir, ErrIO, err)
	}

	names := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (b *FileBackend) Close() error {
	return nil
}
