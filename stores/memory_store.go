package stores

import (
	"sync"

	"github.com/unichat-ai/unichat/models"
)

// MemoryStore implements SnapshotStore without any durable backing. Useful for
// tests and for running without persistence configured.
type MemoryStore struct {
	mu   sync.Mutex
	snap models.Snapshot
	set  bool
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save keeps the snapshot in memory, replacing any previous one.
func (s *MemoryStore) Save(snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.set = true
	return nil
}

// Load returns the last saved snapshot, or an empty one if nothing was saved.
func (s *MemoryStore) Load() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return models.Snapshot{}, nil
	}
	return s.snap, nil
}

func (s *MemoryStore) Connect() error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Ping() error { return nil }
