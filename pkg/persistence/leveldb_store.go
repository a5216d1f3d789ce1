package persistence

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBBackend keeps every document under its name as a key of a LevelDB database.
type LevelDBBackend struct {
	db   *leveldb.DB
	path string
}

func NewLevelDBBackend(path string) (*LevelDBBackend, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb: %w", err)
	}

	return &LevelDBBackend{db: db, path: path}, nil
}

func (l *LevelDBBackend) Location(name string) string {
	return fmt.Sprintf("%s#%s", l.path, name)
}

func (l *LevelDBBackend) Read(name string) ([]byte, bool, error) {
	data, err := l.db.Get([]byte(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s: %w: %w", name, ErrIO, err)
	}

	return data, true, nil
}

func (l *LevelDBBackend) Write(name string, data []byte) error {
	if err := l.db.Put([]byte(name), data, nil); err != nil {
		return fmt.Errorf("failed to put %s: %w: %w", name, ErrIO, err)
	}

	return nil
}

func (l *LevelDBBackend) List() ([]string, error) {
	iter := l.db.NewIterator(nil, nil)
	defer iter.Release()

	names := []string{}
	for iter.Next() {
		names = append(names, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate leveldb: %w: %w", ErrIO, err)
	}

	return names, nil
}

func (l *LevelDBBackend) Close() error {
	return l.db.Close()
}
