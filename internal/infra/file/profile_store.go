// Package file persists the profile mapping as a single JSON document on
// disk, the default store when neither Redis nor Postgres is configured.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"quiz-legends-service/internal/domain"
)

type saveDocument struct {
	Users map[string]*domain.UserProfile `json:"users"`
}

// ProfileStore reads and writes the whole profile mapping atomically via a
// temp-file rename.
type ProfileStore struct {
	path string
	mu   sync.Mutex
}

func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

func (s *ProfileStore) Load(_ context.Context) (map[string]*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]*domain.UserProfile), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}

	var doc saveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode save file: %w", err)
	}
	if doc.Users == nil {
		doc.Users = make(map[string]*domain.UserProfile)
	}
	return doc.Users, nil
}

func (s *ProfileStore) Save(_ context.Context, profiles map[string]*domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(saveDocument{Users: profiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}
