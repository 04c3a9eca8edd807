package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quiz-legends-service/internal/domain"
)

// profilesKey is the Redis hash holding every profile, one field per username
// with the profile serialized as JSON.
const profilesKey = "quiz:profiles"

// ProfileStore is a Redis-backed implementation of app.ProfileRepository.
type ProfileStore struct {
	client *redis.Client
}

func NewProfileStore(client *redis.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) Load(ctx context.Context) (map[string]*domain.UserProfile, error) {
	fields, err := s.client.HGetAll(ctx, profilesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	profiles := make(map[string]*domain.UserProfile, len(fields))
	for username, raw := range fields {
		var p domain.UserProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", username, err)
		}
		profiles[username] = &p
	}
	return profiles, nil
}

func (s *ProfileStore) Save(ctx context.Context, profiles map[string]*domain.UserProfile) error {
	pipe := s.client.Pipeline()
	for username, p := range profiles {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode profile %q: %w", username, err)
		}
		pipe.HSet(ctx, profilesKey, username, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}
