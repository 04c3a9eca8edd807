package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// DateLayout is how last-active dates are persisted.
const DateLayout = "2006-01-02"

// StringSet is an append-only set persisted as a sorted JSON array.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s StringSet) Len() int { return len(s) }

// Clone returns an independent copy. Cloning a nil set yields an empty one.
func (s StringSet) Clone() StringSet {
	c := make(StringSet, len(s))
	for item := range s {
		c[item] = struct{}{}
	}
	return c
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return json.Marshal(items)
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}

// DailyStats is the per-day slice of a profile. It is zeroed whenever the
// stored LastActive date differs from the current date (see Rollover).
type DailyStats struct {
	QuestionsAnswered int       `json:"questions_answered"`
	CorrectAnswers    int       `json:"correct_answers"`
	FastAnswers       int       `json:"fast_answers"`
	UltraFastAnswers  int       `json:"ultra_fast_answers"`
	PerfectAnswers    int       `json:"perfect_answers"`
	TopicsTried       StringSet `json:"topics_tried"`
	LastActive        string    `json:"last_active"`
}

// UserProfile is the durable per-user progression state. The session
// evaluator is its only writer; level is never stored and is always derived
// from TotalXP.
type UserProfile struct {
	Username        string         `json:"username"`
	TotalXP         int            `json:"total_xp"`
	Coins           int            `json:"coins"`
	CurrentStreak   int            `json:"current_streak"`
	BestStreak      int            `json:"best_streak"`
	EarnedBadges    []string       `json:"earned_badges"`
	QuestionHistory StringSet      `json:"question_history"`
	TopicMastery    map[string]int `json:"topic_mastery"`
	Daily           DailyStats     `json:"daily_stats"`
	TotalQuestions  int            `json:"total_questions"`
	TotalCorrect    int            `json:"total_correct"`
}

// NewUserProfile returns a profile with starting defaults.
func NewUserProfile(username string, now time.Time) *UserProfile {
	return &UserProfile{
		Username:        username,
		Coins:           200,
		EarnedBadges:    []string{},
		QuestionHistory: NewStringSet(),
		TopicMastery:    make(map[string]int),
		Daily:           freshDaily(now),
	}
}

func freshDaily(now time.Time) DailyStats {
	return DailyStats{
		TopicsTried: NewStringSet(),
		LastActive:  now.Format(DateLayout),
	}
}

// Clone returns a deep copy sharing no collections with the original. The
// session evaluator works on a clone and publishes it when done, so a profile
// handed to a store is never written again.
func (p *UserProfile) Clone() *UserProfile {
	clone := *p
	clone.EarnedBadges = append([]string(nil), p.EarnedBadges...)
	clone.QuestionHistory = p.QuestionHistory.Clone()
	clone.TopicMastery = make(map[string]int, len(p.TopicMastery))
	for topic, count := range p.TopicMastery {
		clone.TopicMastery[topic] = count
	}
	clone.Daily.TopicsTried = p.Daily.TopicsTried.Clone()
	return &clone
}

// Normalize backfills collections that decode as nil from sparse or
// hand-edited save documents, so callers never index a nil map.
func (p *UserProfile) Normalize() {
	if p.EarnedBadges == nil {
		p.EarnedBadges = []string{}
	}
	if p.QuestionHistory == nil {
		p.QuestionHistory = NewStringSet()
	}
	if p.TopicMastery == nil {
		p.TopicMastery = make(map[string]int)
	}
	if p.Daily.TopicsTried == nil {
		p.Daily.TopicsTried = NewStringSet()
	}
}

// Rollover resets the daily stats if the stored day differs from now. It is
// invoked lazily on every profile access rather than on a timer.
func (p *UserProfile) Rollover(now time.Time) {
	if p.Daily.LastActive != now.Format(DateLayout) {
		p.Daily = freshDaily(now)
	}
}

// HasBadge reports whether the badge id has already been earned.
func (p *UserProfile) HasBadge(id string) bool {
	for _, earned := range p.EarnedBadges {
		if earned == id {
			return true
		}
	}
	return false
}

// Accuracy is the lifetime correct-answer percentage.
func (p *UserProfile) Accuracy() float64 {
	total := p.TotalQuestions
	if total == 0 {
		total = 1
	}
	return float64(p.TotalCorrect) / float64(total) * 100
}
