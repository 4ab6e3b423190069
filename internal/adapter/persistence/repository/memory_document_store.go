package repository

import (
	"context"
	"sync"

	"mixto_gestao/internal/usecase/interfaces"
)

// MemoryDocumentStore keeps documents in process memory. Used by tests and
// by the "memory" storage driver.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ interfaces.IDocumentStore = (*MemoryDocumentStore)(nil)

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string][]byte)}
}

func (s *MemoryDocumentStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryDocumentStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = append([]byte(nil), payload...)
	return nil
}
