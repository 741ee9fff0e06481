package service

import (
	"math/rand"
	"time"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

// QuestionSelector picks and shuffles the question pool for a session.
type QuestionSelector struct {
	rng *rand.Rand
}

// NewQuestionSelector creates a new QuestionSelector.
func NewQuestionSelector() *QuestionSelector {
	return &QuestionSelector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newSeededSelector is used by tests that need deterministic shuffles.
func newSeededSelector(seed int64) *QuestionSelector {
	return &QuestionSelector{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Select returns up to limit questions drawn from the pool in random order.
// Each selected question gets its options shuffled as well. The input pool
// is never mutated.
func (s *QuestionSelector) Select(pool []entities.Question, limit int) []entities.Question {
	out := append([]entities.Question(nil), pool...)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}

	for i := range out {
		out[i].Options = s.shuffledOptions(out[i].Options)
	}

	return out
}

// shuffledOptions returns a shuffled copy of the options slice.
func (s *QuestionSelector) shuffledOptions(options []string) []string {
	out := append([]string(nil), options...)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
