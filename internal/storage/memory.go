package storage

import (
	"context"
	"sort"
	"sync"

	"folio/internal/domain"
)

// MemoryStore is an in-memory Store and MessageStore
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	messages []domain.ContactMessage
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) SaveMessage(_ context.Context, msg domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *MemoryStore) ListMessages(_ context.Context, limit int) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	out := append([]domain.ContactMessage(nil), s.messages...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
