package memory

import (
	"context"
	"sync"

	"quiz-legends-service/internal/domain"
)

// ProfileStore is an in-memory implementation of app.ProfileRepository,
// useful for tests and for running without any backing store.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*domain.UserProfile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]*domain.UserProfile)}
}

// NewSeededProfileStore starts the store with existing profiles.
func NewSeededProfileStore(profiles map[string]*domain.UserProfile) *ProfileStore {
	store := NewProfileStore()
	for username, p := range profiles {
		store.profiles[username] = p
	}
	return store
}

func (s *ProfileStore) Load(_ context.Context) (map[string]*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*domain.UserProfile, len(s.profiles))
	for username, p := range s.profiles {
		out[username] = p
	}
	return out, nil
}

func (s *ProfileStore) Save(_ context.Context, profiles map[string]*domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]*domain.UserProfile, len(profiles))
	for username, p := range profiles {
		s.profiles[username] = p
	}
	return nil
}
