package storage

import (
	"context"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"sync"
)

type memoryEntry struct {
	token string
	user  *models.User
}

// memoryStorage serves tests and single-instance development runs. Entries
// do not survive a restart.
type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStorage() contracts.ClientStorage {
	return &memoryStorage{entries: make(map[string]memoryEntry)}
}

func (s *memoryStorage) Load(ctx context.Context, clientID string) (string, *models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[clientID]
	if !ok {
		return "", nil, nil
	}
	return entry.token, entry.user.Clone(), nil
}

func (s *memoryStorage) Save(ctx context.Context, clientID, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[clientID] = memoryEntry{token: token, user: user.Clone()}
	return nil
}

func (s *memoryStorage) SaveUser(ctx context.Context, clientID string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[clientID]
	if !ok {
		return nil
	}
	entry.user = user.Clone()
	s.entries[clientID] = entry
	return nil
}

func (s *memoryStorage) Clear(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, clientID)
	return nil
}
