package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

// resultHeader is the CSV header written when the results file is created.
var resultHeader = []string{
	"name", "difficulty", "score", "total_questions",
	"lives_remaining", "hints_used", "timestamp",
}

// ResultRepository appends finished session records to a CSV file.
// The file is append-only; records are never rewritten.
type ResultRepository struct {
	path string
}

// NewResultRepository creates a ResultRepository writing to the given path.
func NewResultRepository(path string) *ResultRepository {
	return &ResultRepository{
		path: path,
	}
}

// Append writes one result row, creating the file with a header row first
// if it does not exist yet. A write failure is returned to the caller;
// the record is not retried.
func (r *ResultRepository) Append(res *entities.Result) error {
	_, statErr := os.Stat(r.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}

	w := csv.NewWriter(f)

	if writeHeader {
		if err = w.Write(resultHeader); err != nil {
			f.Close()
			return fmt.Errorf("write results header: %w", err)
		}
	}

	row := []string{
		res.PlayerName,
		string(res.Difficulty),
		strconv.Itoa(res.Score),
		strconv.Itoa(res.TotalQuestions),
		strconv.Itoa(res.LivesRemaining),
		strconv.Itoa(res.HintsUsed),
		res.FinishedAt.Format(time.RFC3339),
	}
	if err = w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("write result row: %w", err)
	}

	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush results file: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close results file: %w", err)
	}

	return nil
}
