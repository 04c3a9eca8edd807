package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"quiz-legends-service/internal/domain"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewProfileStore(client)
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty mapping, got %d", len(loaded))
	}

	p := domain.NewUserProfile("alice", time.Now())
	p.TotalXP = 365
	p.TopicMastery["Physics"] = 3
	if err := store.Save(ctx, map[string]*domain.UserProfile{"alice": p}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !mr.Exists("quiz:profiles") {
		t.Fatalf("expected profiles hash in redis")
	}

	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := loaded["alice"]
	if got == nil || got.TotalXP != 365 || got.TopicMastery["Physics"] != 3 {
		t.Fatalf("unexpected profile after reload: %+v", got)
	}
}

func TestProfileStoreSaveOverwrites(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewProfileStore(client)
	ctx := context.Background()

	p := domain.NewUserProfile("alice", time.Now())
	if err := store.Save(ctx, map[string]*domain.UserProfile{"alice": p}); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.TotalXP = 500
	if err := store.Save(ctx, map[string]*domain.UserProfile{"alice": p}); err != nil {
		t.Fatalf("save again: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded["alice"].TotalXP != 500 {
		t.Fatalf("expected latest save to win, got %d", loaded["alice"].TotalXP)
	}
}
