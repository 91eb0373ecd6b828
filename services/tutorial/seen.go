package tutorial

import (
	"context"
	"sync"
)

// SeenStore remembers which installations were already offered the tour.
type SeenStore interface {
	HasSeen(ctx context.Context, installationID string) (bool, error)
	MarkSeen(ctx context.Context, installationID string) error
}

// MemorySeenStore is a SeenStore for tests and single-node development.
type MemorySeenStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func NewMemorySeenStore() *MemorySeenStore {
	return &MemorySeenStore{seen: make(map[string]bool)}
}

func (s *MemorySeenStore) HasSeen(_ context.Context, installationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[installationID], nil
}

func (s *MemorySeenStore) MarkSeen(_ context.Context, installationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[installationID] = true
	return nil
}
