package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each key in its own JSON file under a data directory.
// A per-key mutex serializes updates; writes go to a temp file followed by
// rename so readers never observe a torn value.
type FileStore struct {
	dir string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *FileStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()

	current, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(next); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
