package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrEmptyBank         = errors.New("question bank is empty")
)

// QuestionRepository provides read-only access to the question bank.
// The bank is loaded once at startup and never mutated afterwards.
type QuestionRepository struct {
	byDifficulty map[entities.Difficulty][]entities.Question
}

// NewQuestionRepository loads the question bank from a JSON file mapping
// difficulty tags to question lists. Any malformed entry fails the whole
// load; there is no partial bank.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	bank, err := loadBank(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		byDifficulty: bank,
	}, nil
}

// Difficulties returns the bank's difficulty tags in sorted order.
func (r *QuestionRepository) Difficulties() []entities.Difficulty {
	out := make([]entities.Difficulty, 0, len(r.byDifficulty))
	for d := range r.byDifficulty {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether the bank knows the given difficulty tag.
func (r *QuestionRepository) Has(difficulty entities.Difficulty) bool {
	_, ok := r.byDifficulty[difficulty]
	return ok
}

// GetByDifficulty returns the question pool for a difficulty tag.
// The returned slice is a copy; callers may reorder it freely.
func (r *QuestionRepository) GetByDifficulty(difficulty entities.Difficulty) ([]entities.Question, error) {
	pool, ok := r.byDifficulty[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	return append([]entities.Question(nil), pool...), nil
}

func loadBank(path string) (map[entities.Difficulty][]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var raw map[string][]entities.Question
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank JSON: %w", err)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyBank
	}

	bank := make(map[entities.Difficulty][]entities.Question, len(raw))
	for tag, questions := range raw {
		if len(questions) == 0 {
			return nil, fmt.Errorf("difficulty %q: %w", tag, ErrEmptyBank)
		}

		for i, q := range questions {
			if err = validateQuestion(q); err != nil {
				return nil, fmt.Errorf("difficulty %q, question %d: %w", tag, i+1, err)
			}
		}

		bank[entities.Difficulty(tag)] = questions
	}

	return bank, nil
}

func validateQuestion(q entities.Question) error {
	if q.Prompt == "" {
		return errors.New("empty prompt")
	}
	if q.Answer == "" {
		return errors.New("empty answer")
	}

	if len(q.Options) == 0 {
		return nil // free-input question, nothing more to check
	}

	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not among the options", q.Answer)
}
