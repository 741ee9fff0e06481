// messages.go contains message templates and formatting functions for the terminal UI.

package terminal

import (
	"fmt"

	"github.com/rdsafin/mathquiz/internal/service"
)

const (
	msgWelcome = "🐾 Welcome to Math Quiz Adventure! 🐾\n" +
		"Answer questions, keep your hearts, beat your best score."

	msgEnterName    = "Enter your name:"
	msgNameRequired = "Please enter your name."

	msgAnswerRequired = "Please type an answer, an option letter, or h for a hint."
	msgNoHint         = "No hint available."
	msgNoQuestions    = "No questions available for this level."

	msgResultSaveFailed       = "⚠️  Your result could not be saved to the results log."
	msgLeaderboardUnavailable = "The leaderboard is unavailable right now."
	msgStatsUnavailable       = "Your statistics are unavailable right now."

	msgAfterSession  = "[r]etry same level, [m]enu, [q]uit:"
	msgUnknownChoice = "Unknown choice, try again."
	msgGoodbye       = "Bye! 🐾"
)

// formatHint formats a hint line.
func formatHint(hint string) string {
	return fmt.Sprintf("💡 Hint: %s", hint)
}

// formatFeedback formats feedback for a submitted answer.
func formatFeedback(fb *service.AnswerFeedback) string {
	if fb.Correct {
		return fmt.Sprintf("✅ Correct!  %s", renderHearts(fb.LivesRemaining))
	}
	return fmt.Sprintf("❌ Incorrect! Correct: %s  %s", fb.CorrectAnswer, renderHearts(fb.LivesRemaining))
}

// scoreMessage picks an encouragement line based on the score share.
func scoreMessage(score, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(score) / float64(total)
	}

	switch {
	case ratio == 1:
		return "🌟 Excellent! Perfect score!"
	case ratio >= 0.7:
		return "🎉 Great job! You did well!"
	case ratio >= 0.4:
		return "👍 Good effort! Keep practicing!"
	default:
		return "💪 Needs improvement. Try again!"
	}
}
