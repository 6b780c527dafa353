package blob

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store; used by tests and local tooling.
type MemStore struct {
	mutex sync.RWMutex
	docs  map[string][]byte
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

func (s *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrAbsent
	}
	cpy := make([]byte, len(doc))
	copy(cpy, doc)
	return cpy, nil
}

func (s *MemStore) Put(ctx context.Context, key string, doc []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cpy := make([]byte, len(doc))
	copy(cpy, doc)
	s.docs[key] = cpy
	return nil
}
