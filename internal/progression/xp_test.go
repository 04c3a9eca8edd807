package progression

import (
	"testing"

	"quiz-legends-service/internal/domain"
)

func TestComputeExperienceIncorrectEarnsNothing(t *testing.T) {
	if got := ComputeExperience(false, domain.DifficultyExpert, 0.5, 50, 20); got != 0 {
		t.Fatalf("expected 0 XP for incorrect answer, got %d", got)
	}
}

func TestComputeExperienceEasyFastAnswer(t *testing.T) {
	// base 15 + easy 15 + speed 25 + streak 0 + level 2 = 57
	if got := ComputeExperience(true, domain.DifficultyEasy, 0.5, 0, 1); got != 57 {
		t.Fatalf("expected 57 XP, got %d", got)
	}
}

func TestComputeExperienceBonuses(t *testing.T) {
	tests := []struct {
		name         string
		difficulty   domain.Difficulty
		responseTime float64
		streak       int
		level        int
		want         int
	}{
		{"medium default speed", domain.DifficultyMedium, 10, 0, 1, 15 + 22 + 0 + 0 + 2},
		{"unknown difficulty treated as medium", domain.Difficulty("bizarre"), 10, 0, 1, 15 + 22 + 0 + 0 + 2},
		{"hard within 2s", domain.DifficultyHard, 1.8, 0, 1, 15 + 33 + 15 + 0 + 2},
		{"expert within 1s", domain.DifficultyExpert, 0.9, 0, 1, 15 + 45 + 25 + 0 + 2},
		{"within 3s", domain.DifficultyEasy, 2.5, 0, 1, 15 + 15 + 10 + 0 + 2},
		{"within 5s", domain.DifficultyEasy, 4.9, 0, 1, 15 + 15 + 5 + 0 + 2},
		{"short streak doubles", domain.DifficultyEasy, 10, 3, 1, 15 + 15 + 0 + 6 + 2},
		{"streak 5 tier", domain.DifficultyEasy, 10, 5, 1, 15 + 15 + 0 + 15 + 2},
		{"streak 10 tier", domain.DifficultyEasy, 10, 10, 1, 15 + 15 + 0 + 25 + 2},
		{"streak 25 tier", domain.DifficultyEasy, 10, 30, 1, 15 + 15 + 0 + 50 + 2},
		{"streak 50 tier", domain.DifficultyEasy, 10, 50, 1, 15 + 15 + 0 + 100 + 2},
		{"level bonus scales", domain.DifficultyEasy, 10, 0, 10, 15 + 15 + 0 + 0 + 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeExperience(true, tc.difficulty, tc.responseTime, tc.streak, tc.level)
			if got != tc.want {
				t.Fatalf("ComputeExperience = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeExperienceNeverBelowMinimum(t *testing.T) {
	for streak := 0; streak <= 60; streak++ {
		for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard, domain.DifficultyExpert} {
			if got := ComputeExperience(true, difficulty, 100, streak, 0); got < 10 {
				t.Fatalf("correct answer awarded %d XP, want >= 10 (streak=%d difficulty=%s)", got, streak, difficulty)
			}
		}
	}
}
