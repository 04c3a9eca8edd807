package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quiz-legends-service/internal/domain"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewProfileStore(path)

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty mapping for missing file, got %d", len(loaded))
	}

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	p := domain.NewUserProfile("alice", now)
	p.TotalXP = 365
	p.EarnedBadges = []string{"first_steps", "hot_streak"}
	p.QuestionHistory.Add("hash-b")
	p.QuestionHistory.Add("hash-a")
	p.TopicMastery["Physics"] = 5
	p.Daily.TopicsTried.Add("Physics")

	if err := store.Save(ctx, map[string]*domain.UserProfile{"alice": p}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := loaded["alice"]
	if got == nil {
		t.Fatalf("expected alice profile after reload")
	}
	if got.TotalXP != 365 || len(got.EarnedBadges) != 2 {
		t.Fatalf("unexpected profile after reload: %+v", got)
	}
	if !got.QuestionHistory.Has("hash-a") || !got.QuestionHistory.Has("hash-b") {
		t.Fatalf("question history lost in round trip: %+v", got.QuestionHistory)
	}
	if got.Daily.LastActive != "2025-06-15" {
		t.Fatalf("expected ISO date, got %q", got.Daily.LastActive)
	}
}

func TestProfileStoreSerializesSetsAsSortedArrays(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewProfileStore(path)

	p := domain.NewUserProfile("alice", time.Now())
	p.QuestionHistory.Add("zz")
	p.QuestionHistory.Add("aa")
	if err := store.Save(ctx, map[string]*domain.UserProfile{"alice": p}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read save file: %v", err)
	}
	var doc struct {
		Users map[string]struct {
			QuestionHistory []string `json:"question_history"`
		} `json:"users"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode save file: %v", err)
	}
	history := doc.Users["alice"].QuestionHistory
	if len(history) != 2 || history[0] != "aa" || history[1] != "zz" {
		t.Fatalf("expected sorted history array, got %v", history)
	}
}
