package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

type fakeResultStore struct {
	saved   []*entities.Result
	top     []*entities.Result
	correct int
	wrong   int
	err     error
}

func (f *fakeResultStore) SaveResult(_ context.Context, res *entities.Result) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, res)
	return nil
}

func (f *fakeResultStore) TopResults(_ context.Context, limit int) ([]*entities.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.top) {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeResultStore) PlayerStats(_ context.Context, _ string) (int, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.correct, f.wrong, nil
}

func result(player string, score, total int) *entities.Result {
	return &entities.Result{
		PlayerName:     player,
		Difficulty:     entities.DifficultyEasy,
		Score:          score,
		TotalQuestions: total,
		FinishedAt:     time.Now(),
	}
}

func TestTopKeepsBestEntryPerPlayer(t *testing.T) {
	store := &fakeResultStore{
		// Store contract: best-first ordering.
		top: []*entities.Result{
			result("alice", 10, 10),
			result("bob", 8, 10),
			result("alice", 7, 10),
			result("carol", 5, 10),
		},
	}
	svc := NewLeaderboardService(store)

	entries, err := svc.Top(context.Background(), 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantOrder := []string{"alice", "bob", "carol"}
	for i, want := range wantOrder {
		if entries[i].PlayerName != want {
			t.Fatalf("rank %d: got %q, want %q", i+1, entries[i].PlayerName, want)
		}
		if entries[i].Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, entries[i].Rank)
		}
	}

	if entries[0].Score != 10 || entries[0].Percentage != 100 {
		t.Fatalf("alice must keep her best session: %+v", entries[0])
	}
}

func TestTopRespectsLimit(t *testing.T) {
	store := &fakeResultStore{
		top: []*entities.Result{
			result("alice", 9, 10),
			result("bob", 8, 10),
			result("carol", 7, 10),
		},
	}
	svc := NewLeaderboardService(store)

	entries, err := svc.Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestRecordSavesResult(t *testing.T) {
	store := &fakeResultStore{}
	svc := NewLeaderboardService(store)

	if err := svc.Record(context.Background(), result("alice", 5, 10)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(store.saved))
	}
}

func TestStatsAccuracy(t *testing.T) {
	store := &fakeResultStore{correct: 30, wrong: 10}
	svc := NewLeaderboardService(store)

	stats, err := svc.Stats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Correct != 30 || stats.Incorrect != 10 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Accuracy != 75 {
		t.Fatalf("expected accuracy 75, got %f", stats.Accuracy)
	}
}

func TestStatsStoreFailure(t *testing.T) {
	store := &fakeResultStore{err: errors.New("db closed")}
	svc := NewLeaderboardService(store)

	if _, err := svc.Stats(context.Background(), "alice"); err == nil {
		t.Fatal("expected store failure to surface")
	}
}
