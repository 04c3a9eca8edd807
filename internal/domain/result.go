package domain

// AnswerOutcome annotates one evaluated (question, answer) pair. Skipped
// malformed questions produce no outcome.
type AnswerOutcome struct {
	QuestionID    string  `json:"question_id,omitempty"`
	Answer        string  `json:"answer"`
	ResponseTime  float64 `json:"response_time"`
	IsCorrect     bool    `json:"is_correct"`
	XPEarned      int     `json:"xp_earned"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	Explanation   string  `json:"explanation"`
	FunFact       string  `json:"fun_fact,omitempty"`
}

// LevelUp records a level transition caused by a single answer's XP.
type LevelUp struct {
	NewLevel   int    `json:"new_level"`
	NewTitle   string `json:"new_title"`
	BonusCoins int    `json:"bonus_coins"`
}

// SessionResult summarizes one evaluated answer batch plus the cumulative
// state of the profile afterwards.
type SessionResult struct {
	SessionID      string          `json:"session_id"`
	Username       string          `json:"username"`
	SessionCorrect int             `json:"session_correct"`
	TotalQuestions int             `json:"total_questions"`
	Accuracy       float64         `json:"accuracy"`
	SessionXP      int             `json:"session_xp"`
	TotalXP        int             `json:"total_xp"`
	CurrentStreak  int             `json:"current_streak"`
	BestStreak     int             `json:"best_streak"`
	Coins          int             `json:"coins"`
	PerfectAnswers int             `json:"perfect_answers"`
	Level          int             `json:"level"`
	Title          string          `json:"title"`
	LevelProgress  float64         `json:"level_progress"`
	XPToNext       int             `json:"xp_to_next"`
	IsMaxLevel     bool            `json:"is_max_level"`
	LevelUps       []LevelUp       `json:"level_ups"`
	NewBadges      []Badge         `json:"new_badges"`
	Answers        []AnswerOutcome `json:"answers"`
}

// BadgeSummary is a badge enriched with the caller's earned flag.
type BadgeSummary struct {
	Badge
	Earned bool `json:"earned"`
}

// TopicCount pairs a topic with its mastery count for dashboard display.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Dashboard is the read-only progression overview for one user.
type Dashboard struct {
	Username        string       `json:"username"`
	Level           int          `json:"level"`
	Title           string       `json:"title"`
	TotalXP         int          `json:"total_xp"`
	Coins           int          `json:"coins"`
	CurrentStreak   int          `json:"current_streak"`
	BestStreak      int          `json:"best_streak"`
	BadgesEarned    int          `json:"badges_earned"`
	TotalBadges     int          `json:"total_badges"`
	Accuracy        float64      `json:"accuracy"`
	LevelProgress   float64      `json:"level_progress"`
	XPToNext        int          `json:"xp_to_next"`
	IsMaxLevel      bool         `json:"is_max_level"`
	TotalQuestions  int          `json:"total_questions"`
	TotalCorrect    int          `json:"total_correct"`
	DailyQuestions  int          `json:"daily_questions"`
	FastAnswersDay  int          `json:"fast_answers_today"`
	PerfectAnswers  int          `json:"perfect_answers"`
	TopicsMastered  int          `json:"topics_mastered"`
	RecentBadges    []Badge      `json:"recent_badges"`
	TopTopics       []TopicCount `json:"top_topics"`
}

// BadgeReport groups the full catalog by category with earned flags.
type BadgeReport struct {
	Categories           map[string][]BadgeSummary `json:"categories"`
	EarnedCount          int                       `json:"earned_count"`
	TotalCount           int                       `json:"total_count"`
	CompletionPercentage float64                   `json:"completion_percentage"`
}
