package persistence

import (
	"fmt"

	"github.com/xiaomi388/kakeibo/pkg/config"
)

// Backend abstracts where the bytes of named documents are kept.
// Read reports found == false with a nil error when the document does not exist.
type Backend interface {
	Read(name string) (data []byte, found bool, err error)
	Write(name string, data []byte) error
	List() ([]string, error)
	Location(name string) string
	Close() error
}

// NewBackendWithName creates a Backend for the given backend name and optional path.
func NewBackendWithName(backend, path string) (Backend, error) {
	return NewBackend(config.StorageConfig{Backend: backend, Path: path})
}

// NewBackend creates a Backend based on the storage configuration.
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = config.BackendJSON
	}

	switch backend {
	case config.BackendJSON:
		path := cfg.Path
		if path == "" {
			path = DefaultDir
		}
		return NewFileBackend(path), nil
	case config.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLiteBackend(path)
	case config.BackendLevelDB:
		path := cfg.Path
		if path == "" {
			path = DefaultLevelDBPath
		}
		return NewLevelDBBackend(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// Copy writes every document of src into dst and returns how many were copied.
func Copy(dst, src Backend) (int, error) {
	names, err := src.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list source documents: %w", err)
	}

	copied := 0
	for _, name := range names {
		data, found, err := src.Read(name)
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if !found {
			continue
		}

		if err := dst.Write(name, data); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", name, err)
		}
		copied++
	}

	return copied, nil
}
