package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrUnavailable marks failures reading or writing durable state. Callers
// must treat a mutation whose save returned this error as not persisted.
var ErrUnavailable = errors.New("storage unavailable")

// Store keeps each named collection in its own JSON document under dir.
// Every mutation is read-whole-document, mutate in memory, write-whole-document;
// the per-collection mutex serializes that cycle across requests.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("storage: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: could not create data directory: %v", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Lock acquires the named collection's mutex and returns its unlock func,
// meant to be used as `defer store.Lock("operations")()` around one
// load-mutate-save cycle.
func (s *Store) Lock(collection string) func() {
	s.mu.Lock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the collection document into doc. A missing file is not an
// error: doc is left empty and a warning is logged.
func (s *Store) Load(collection string, doc interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: collection %q not found, starting empty", collection)
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrUnavailable, collection, err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, collection, err)
	}
	return nil
}

// Save overwrites the collection document. The document is written to a
// temporary file in the same directory and renamed into place so readers
// never observe a partial write.
func (s *Store) Save(collection string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, collection, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, collection, err)
	}
	return nil
}
