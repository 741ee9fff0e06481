package repository

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

func testResult(player string, score int) *entities.Result {
	return &entities.Result{
		PlayerName:     player,
		Difficulty:     entities.DifficultyMedium,
		Score:          score,
		TotalQuestions: 10,
		LivesRemaining: 6,
		HintsUsed:      2,
		FinishedAt:     time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	repo := NewResultRepository(path)

	if err := repo.Append(testResult("alice", 7)); err != nil {
		t.Fatalf("first Append failed: %v", err)
	}
	if err := repo.Append(testResult("bob", 4)); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open results file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read results CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "name" || rows[0][1] != "difficulty" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	alice := rows[1]
	if alice[0] != "alice" || alice[1] != "medium" || alice[2] != "7" {
		t.Fatalf("unexpected first row: %v", alice)
	}
	if alice[3] != "10" || alice[4] != "6" || alice[5] != "2" {
		t.Fatalf("unexpected first row counters: %v", alice)
	}
	if _, err = time.Parse(time.RFC3339, alice[6]); err != nil {
		t.Fatalf("timestamp column not RFC3339: %v", err)
	}

	if rows[2][0] != "bob" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestAppendFailureSurfaces(t *testing.T) {
	// A directory path cannot be opened as a file for appending.
	repo := NewResultRepository(t.TempDir())

	if err := repo.Append(testResult("alice", 7)); err == nil {
		t.Fatal("expected append to a directory to fail")
	}
}
