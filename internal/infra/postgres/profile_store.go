package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-legends-service/internal/domain"
)

// ProfileStore persists each profile as a JSONB row keyed by username.
type ProfileStore struct {
	pool *pgxpool.Pool
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) Load(ctx context.Context) (map[string]*domain.UserProfile, error) {
	rows, err := s.pool.Query(ctx, `SELECT username, data FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]*domain.UserProfile)
	for rows.Next() {
		var username string
		var raw []byte
		if err := rows.Scan(&username, &raw); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		var p domain.UserProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile %q: %w", username, err)
		}
		profiles[username] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileStore) Save(ctx context.Context, profiles map[string]*domain.UserProfile) error {
	batch := &pgx.Batch{}
	for username, p := range profiles {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal profile %q: %w", username, err)
		}
		batch.Queue(
			`INSERT INTO profiles (username, data) VALUES ($1, $2)
			 ON CONFLICT (username) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			username, data,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range profiles {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("save profiles: %w", err)
		}
	}
	return nil
}
