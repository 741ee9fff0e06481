package terminal

import (
	"fmt"
	"strings"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
	"github.com/rdsafin/mathquiz/internal/service"
)

// renderHearts renders the life row, full hearts first.
func renderHearts(lives int) string {
	if lives < 0 {
		lives = 0
	}
	empty := entities.InitialLives - lives
	if empty < 0 {
		empty = 0
	}
	return strings.Repeat("❤️", lives) + strings.Repeat("🤍", empty)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// renderMenu renders the difficulty selection screen.
func renderMenu(name string, difficulties []entities.Difficulty) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nHi %s! 👋 Choose your difficulty level:\n", name)
	for i, d := range difficulties {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, d)
	}
	b.WriteString("  l) leaderboard\n")
	b.WriteString("  s) my stats\n")
	b.WriteString("  q) quit")

	return b.String()
}

// renderQuestion renders the current question with progress, hearts and options.
func renderQuestion(sess *entities.Session, q entities.Question) string {
	var b strings.Builder

	total := len(sess.Questions)
	fmt.Fprintf(&b, "\n%s  score %d\n", buildProgressBar(sess.CurrentIndex, total, 20), sess.Score)
	b.WriteString(renderHearts(sess.Lives))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Q%d: %s\n", sess.CurrentIndex+1, q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %c) %s\n", 'A'+i, opt)
	}
	b.WriteString("Answer (or h for hint, q to quit):")

	return b.String()
}

// formatGameOver renders the out-of-lives screen.
func formatGameOver(res *entities.Result) string {
	return fmt.Sprintf(
		"\n💔 Game Over 💔\nYou ran out of lives, %s!\nScore: %d/%d",
		res.PlayerName, res.Score, res.TotalQuestions,
	)
}

// formatFinalScore renders the end-of-quiz score screen.
func formatFinalScore(res *entities.Result) string {
	return fmt.Sprintf(
		"\n%s, you finished the %s quiz!\nYour Score: %d/%d\n%s",
		res.PlayerName, res.Difficulty, res.Score, res.TotalQuestions,
		scoreMessage(res.Score, res.TotalQuestions),
	)
}

// renderLeaderboard renders the local best-results table.
func renderLeaderboard(entries []service.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "\n🏆 Leaderboard\nNo results yet. Play a round!"
	}

	var b strings.Builder
	b.WriteString("\n🏆 Leaderboard\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%2d. %-15s %s  %d/%d (%d%%)\n",
			e.Rank, e.PlayerName, e.Difficulty, e.Score, e.TotalQuestions, e.Percentage)
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderStats renders a player's all-time answer statistics.
func renderStats(name string, stats *service.PlayerStats) string {
	return fmt.Sprintf(
		"\n📊 Stats for %s\n✅ Correct: %d\n❌ Incorrect: %d\n🎯 Accuracy: %.1f%%",
		name, stats.Correct, stats.Incorrect, stats.Accuracy,
	)
}
