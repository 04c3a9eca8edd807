package progression

import "quiz-legends-service/internal/domain"

const baseXP = 15

// minAwardXP floors every correct answer's award.
const minAwardXP = 10

var difficultyMultipliers = map[domain.Difficulty]float64{
	domain.DifficultyEasy:   1.0,
	domain.DifficultyMedium: 1.5,
	domain.DifficultyHard:   2.2,
	domain.DifficultyExpert: 3.0,
}

// ComputeExperience returns the XP awarded for one answer. Incorrect answers
// earn nothing; correct answers earn base + difficulty + speed + streak +
// level bonuses, never less than minAwardXP. streak is the consecutive-correct
// count BEFORE this answer is applied.
func ComputeExperience(correct bool, difficulty domain.Difficulty, responseTime float64, streak, level int) int {
	if !correct {
		return 0
	}

	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		multiplier = difficultyMultipliers[domain.DifficultyMedium]
	}
	difficultyBonus := int(baseXP * multiplier)

	var speedBonus int
	switch {
	case responseTime <= 1:
		speedBonus = 25
	case responseTime <= 2:
		speedBonus = 15
	case responseTime <= 3:
		speedBonus = 10
	case responseTime <= 5:
		speedBonus = 5
	}

	var streakBonus int
	switch {
	case streak >= 50:
		streakBonus = 100
	case streak >= 25:
		streakBonus = 50
	case streak >= 10:
		streakBonus = 25
	case streak >= 5:
		streakBonus = 15
	default:
		streakBonus = streak * 2
	}

	total := baseXP + difficultyBonus + speedBonus + streakBonus + level*2
	if total < minAwardXP {
		total = minAwardXP
	}
	return total
}
