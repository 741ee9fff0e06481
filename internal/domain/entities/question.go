package entities

// Difficulty is a named question-pool partition of the bank.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single entry of the question bank. Immutable once loaded.
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"` // multiple choice, the answer is one of them
	Answer  string   `json:"answer"`
	Hint    string   `json:"hint,omitempty"`
}

// HasHint reports whether the question carries hint text.
func (q Question) HasHint() bool {
	return q.Hint != ""
}
