package sessionstorage

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"sync"
)

// Key joins the namespace and the item name, e.g. "@OdontoCare:token".
func Key(namespace, name string) string {
	return namespace + ":" + name
}

type memoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage keeps the session for the life of the process only.
func NewMemoryStorage() contracts.SessionStorage {
	return &memoryStorage{items: make(map[string]string)}
}

func (s *memoryStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.items[key]
	return value, found, nil
}

func (s *memoryStorage) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *memoryStorage) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
