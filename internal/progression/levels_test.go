package progression

import "testing"

func TestLevelInfoBoundaries(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
	}{
		{0, 1},
		{57, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{4900, 10},
		{103899, 19},
		{103900, 20},
		{500000, 20},
	}

	for _, tc := range tests {
		info := LevelInfo(tc.xp)
		if info.Level != tc.wantLevel {
			t.Fatalf("LevelInfo(%d).Level = %d, want %d", tc.xp, info.Level, tc.wantLevel)
		}
	}
}

func TestLevelInfoMaxLevel(t *testing.T) {
	info := LevelInfo(103900)
	if !info.IsMax {
		t.Fatalf("expected max level at terminal threshold")
	}
	if info.XPToNext != 0 || info.Progress != 100 {
		t.Fatalf("expected pinned progress at max level, got xpToNext=%d progress=%f", info.XPToNext, info.Progress)
	}
	if info.Title != "Transcendent Master" {
		t.Fatalf("unexpected terminal title %q", info.Title)
	}
}

func TestLevelInfoProgress(t *testing.T) {
	// Level 1 spans 0-99, so 50 XP is halfway.
	info := LevelInfo(50)
	if info.Progress != 50 {
		t.Fatalf("expected 50%% progress, got %f", info.Progress)
	}
	if info.XPToNext != 50 {
		t.Fatalf("expected 50 XP to next level, got %d", info.XPToNext)
	}
}

func TestLevelInfoMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 120000; xp += 37 {
		level := LevelInfo(xp).Level
		if level < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}
