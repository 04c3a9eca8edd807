package domain

// FormatType is the closed set of question formats the grader understands.
type FormatType string

const (
	FormatMultipleChoice FormatType = "multiple_choice"
	FormatTrueFalse      FormatType = "true_false"
	FormatFillInBlank    FormatType = "fill_in_blank"
	FormatShortAnswer    FormatType = "short_answer"
)

// Difficulty buckets map to XP multipliers in the progression engine.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// QuizQuestion is a generated question record. The generator is an external
// collaborator; the evaluator treats these as read-only input and tolerates
// missing optional fields via defaults (see app.decodeQuestion).
type QuizQuestion struct {
	Question      string     `json:"question"`
	CorrectAnswer string     `json:"correct_answer"`
	Explanation   string     `json:"explanation"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	FormatType    FormatType `json:"format_type"`
	Options       []string   `json:"options,omitempty"`
	UniqueID      string     `json:"unique_id,omitempty"`
	QuestionHash  string     `json:"question_hash,omitempty"`
	FunFact       string     `json:"fun_fact,omitempty"`
}

// AnswerSubmission is one submitted answer paired positionally with a question.
type AnswerSubmission struct {
	QuestionID   string  `json:"question_id,omitempty"`
	Answer       string  `json:"answer"`
	ResponseTime float64 `json:"response_time"`
}
