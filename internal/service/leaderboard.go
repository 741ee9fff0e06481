package service

import (
	"context"
	"fmt"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

// ResultStore persists finished sessions and answer activity.
type ResultStore interface {
	SaveResult(ctx context.Context, res *entities.Result) error
	TopResults(ctx context.Context, limit int) ([]*entities.Result, error)
	PlayerStats(ctx context.Context, player string) (correct int, incorrect int, err error)
}

// LeaderboardEntry is one row of the local best-results table.
type LeaderboardEntry struct {
	Rank           int
	PlayerName     string
	Difficulty     entities.Difficulty
	Score          int
	TotalQuestions int
	Percentage     int
}

// PlayerStats summarizes a player's answer history.
type PlayerStats struct {
	Correct   int
	Incorrect int
	Accuracy  float64 // 0-100
}

// LeaderboardService maintains a local best-results table over the
// history store. One entry per player; a new result replaces the old one
// only when it is better.
type LeaderboardService struct {
	store ResultStore
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(store ResultStore) *LeaderboardService {
	return &LeaderboardService{
		store: store,
	}
}

// Record stores a finished session in the history store.
func (s *LeaderboardService) Record(ctx context.Context, res *entities.Result) error {
	if err := s.store.SaveResult(ctx, res); err != nil {
		return fmt.Errorf("record session result: %w", err)
	}
	return nil
}

// Top returns up to limit leaderboard entries, best first, keeping only
// each player's best session.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	// The store orders results best-first; fetch generously so the
	// per-player dedup below can still fill the requested limit.
	results, err := s.store.TopResults(ctx, limit*10)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	seen := make(map[string]struct{}, len(results))
	entries := make([]LeaderboardEntry, 0, limit)

	for _, res := range results {
		if _, ok := seen[res.PlayerName]; ok {
			continue
		}
		seen[res.PlayerName] = struct{}{}

		entries = append(entries, LeaderboardEntry{
			Rank:           len(entries) + 1,
			PlayerName:     res.PlayerName,
			Difficulty:     res.Difficulty,
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			Percentage:     int(res.Percentage()),
		})

		if len(entries) == limit {
			break
		}
	}

	return entries, nil
}

// Stats returns a player's all-time answer statistics.
func (s *LeaderboardService) Stats(ctx context.Context, player string) (*PlayerStats, error) {
	correct, incorrect, err := s.store.PlayerStats(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("load player stats: %w", err)
	}

	stats := &PlayerStats{
		Correct:   correct,
		Incorrect: incorrect,
	}
	if total := correct + incorrect; total > 0 {
		stats.Accuracy = float64(correct) / float64(total) * 100
	}

	return stats, nil
}
