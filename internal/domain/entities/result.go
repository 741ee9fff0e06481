package entities

import "time"

// Result is the record appended to the results sink for one finished session.
// Never mutated after creation.
type Result struct {
	PlayerName     string
	Difficulty     Difficulty
	Score          int
	TotalQuestions int
	LivesRemaining int
	HintsUsed      int
	FinishedAt     time.Time
}

// Percentage returns the score as a share of the total, 0-100.
func (r *Result) Percentage() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions) * 100
}
