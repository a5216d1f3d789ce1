package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Store saves and loads JSON documents of type T through a Backend.
// An empty name resolves to the store's default document name.
//
// Every call goes to the backend; nothing is cached and concurrent callers
// are not coordinated.
type Store[T any] struct {
	backend     Backend
	defaultName string
}

func New[T any](backend Backend, defaultName string) *Store[T] {
	return &Store[T]{backend: backend, defaultName: defaultName}
}

// NewDataStore returns the generic data instance, stored as data.json by default.
func NewDataStore(backend Backend) *Store[any] {
	return New[any](backend, DefaultDataName)
}

// NewGraphDataStore returns the graph data instance, stored as graphData.json by default.
func NewGraphDataStore(backend Backend) *Store[any] {
	return New[any](backend, DefaultGraphDataName)
}

func (s *Store[T]) resolve(name string) string {
	if name == "" {
		return s.defaultName
	}
	return name
}

// Location returns where the named document lives in the backend.
func (s *Store[T]) Location(name string) string {
	return s.backend.Location(s.resolve(name))
}

func (s *Store[T]) Save(data T) error {
	return s.SaveAs("", data)
}

// SaveAs serializes data as 2-space indented JSON and overwrites the named document.
func (s *Store[T]) SaveAs(name string, data T) error {
	name = s.resolve(name)
	logger := logrus.WithFields(logrus.Fields{"name": name, "path": s.backend.Location(name)})

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed to marshal %s: %w: %w", name, ErrEncode, err)
		logger.WithError(err).Error("failed to save document")
		return err
	}

	if err := s.backend.Write(name, raw); err != nil {
		logger.WithError(err).Error("failed to save document")
		return err
	}

	logger.Debug("saved document")
	return nil
}

func (s *Store[T]) Load() (T, bool, error) {
	return s.LoadFrom("")
}

// LoadFrom reads and parses the named document. A document that does not
// exist yields found == false and a nil error. Read failures wrap ErrIO and
// parse failures wrap ErrParse.
func (s *Store[T]) LoadFrom(name string) (T, bool, error) {
	var value T
	name = s.resolve(name)
	logger := logrus.WithFields(logrus.Fields{"name": name, "path": s.backend.Location(name)})

	raw, found, err := s.backend.Read(name)
	if err != nil {
		logger.WithError(err).Error("failed to load document")
		return value, false, err
	}
	if !found {
		logger.Debug("no document stored")
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		err = fmt.Errorf("failed to unmarshal %s: %w: %w", name, ErrParse, err)
		logger.WithError(err).Error("failed to load document")
		return zero, false, err
	}

	logger.Debug("loaded document")
	return value, true, nil
}
