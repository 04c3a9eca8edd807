package app

import (
	"strings"

	"quiz-legends-service/internal/domain"
)

var trueIndicators = []string{"true", "t", "yes", "y", "1", "correct", "right"}

// IsCorrect is the format-aware correctness check between a submission and a
// question's canonical answer. Free-text grading is deliberately lenient: it
// is a best-effort similarity check, not exact grading.
func IsCorrect(question domain.QuizQuestion, submitted string) bool {
	if strings.TrimSpace(submitted) == "" {
		return false
	}

	user := strings.ToLower(strings.TrimSpace(submitted))
	correct := strings.ToLower(strings.TrimSpace(question.CorrectAnswer))

	switch question.FormatType {
	case domain.FormatMultipleChoice:
		return gradeMultipleChoice(user, correct)
	case domain.FormatTrueFalse:
		return gradeTrueFalse(user, correct)
	case domain.FormatFillInBlank, domain.FormatShortAnswer:
		return gradeFreeText(user, correct)
	default:
		// Unknown formats fall back to the free-text path.
		return gradeFreeText(user, correct)
	}
}

// gradeMultipleChoice normalizes both sides to a single A-D letter. Longer
// submissions like "B. Energy production" match on their leading letter.
func gradeMultipleChoice(user, correct string) bool {
	userChoice := strings.ToUpper(user)
	correctChoice := strings.ToUpper(correct)

	if len(userChoice) == 1 && strings.Contains("ABCD", userChoice) {
		return userChoice == correctChoice
	}
	for _, letter := range []string{"a", "b", "c", "d"} {
		if strings.HasPrefix(user, letter) {
			return strings.ToUpper(letter) == correctChoice
		}
	}
	return false
}

// gradeTrueFalse maps the submission to a boolean via truthy indicators and
// compares against whether the canonical answer contains "true".
func gradeTrueFalse(user, correct string) bool {
	correctIsTrue := strings.Contains(correct, "true")
	userIsTrue := false
	for _, indicator := range trueIndicators {
		if strings.Contains(user, indicator) {
			userIsTrue = true
			break
		}
	}
	return userIsTrue == correctIsTrue
}

// gradeFreeText accepts exact matches, substring containment either way, and
// a word-set overlap of at least 70% of the smaller set.
func gradeFreeText(user, correct string) bool {
	if user == correct {
		return true
	}
	if strings.Contains(user, correct) || strings.Contains(correct, user) {
		return true
	}

	userWords := wordSet(user)
	correctWords := wordSet(correct)

	overlap := 0
	for word := range userWords {
		if _, ok := correctWords[word]; ok {
			overlap++
		}
	}
	smaller := len(userWords)
	if len(correctWords) < smaller {
		smaller = len(correctWords)
	}
	return overlap > 0 && float64(overlap) >= float64(smaller)*0.7
}

func wordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		words[word] = struct{}{}
	}
	return words
}
