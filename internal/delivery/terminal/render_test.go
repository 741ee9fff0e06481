package terminal

import (
	"strings"
	"testing"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

func TestRenderHearts(t *testing.T) {
	cases := []struct {
		name      string
		lives     int
		wantFull  int
		wantEmpty int
	}{
		{"full lives", 10, 10, 0},
		{"partial lives", 3, 3, 7},
		{"no lives", 0, 0, 10},
		{"negative clamped", -2, 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderHearts(tc.lives)
			if full := strings.Count(got, "❤️"); full != tc.wantFull {
				t.Fatalf("got %d full hearts, want %d", full, tc.wantFull)
			}
			if empty := strings.Count(got, "🤍"); empty != tc.wantEmpty {
				t.Fatalf("got %d empty hearts, want %d", empty, tc.wantEmpty)
			}
		})
	}
}

func TestBuildProgressBar(t *testing.T) {
	if got := buildProgressBar(5, 10, 10); got != "[█████░░░░░]" {
		t.Fatalf("unexpected half bar: %q", got)
	}
	if got := buildProgressBar(10, 10, 10); got != "[██████████]" {
		t.Fatalf("unexpected full bar: %q", got)
	}
	if got := buildProgressBar(0, 0, 4); got != "[░░░░]" {
		t.Fatalf("unexpected empty-total bar: %q", got)
	}
}

func TestScoreMessage(t *testing.T) {
	cases := []struct {
		name  string
		score int
		total int
		want  string
	}{
		{"perfect", 10, 10, "🌟 Excellent! Perfect score!"},
		{"great", 7, 10, "🎉 Great job! You did well!"},
		{"good", 4, 10, "👍 Good effort! Keep practicing!"},
		{"needs work", 3, 10, "💪 Needs improvement. Try again!"},
		{"zero total", 0, 0, "💪 Needs improvement. Try again!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreMessage(tc.score, tc.total); got != tc.want {
				t.Fatalf("scoreMessage(%d, %d) = %q, want %q", tc.score, tc.total, got, tc.want)
			}
		})
	}
}

func TestResolveAnswer(t *testing.T) {
	q := entities.Question{
		Prompt:  "What is 2 + 2?",
		Options: []string{"3", "4", "5", "6"},
		Answer:  "4",
	}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"uppercase letter", "B", "4"},
		{"lowercase letter", "b", "4"},
		{"letter out of range", "z", "z"},
		{"typed answer", "4", "4"},
		{"multi-character input", "42", "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAnswer(tc.input, q); got != tc.want {
				t.Fatalf("resolveAnswer(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRenderQuestionListsOptions(t *testing.T) {
	sess := entities.NewSession("s-1", "alice", entities.DifficultyEasy, []entities.Question{
		{Prompt: "What is 2 + 2?", Options: []string{"3", "4"}, Answer: "4"},
	}, entities.InitialLives)

	out := renderQuestion(sess, sess.Questions[0])

	for _, want := range []string{"Q1: What is 2 + 2?", "A) 3", "B) 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered question missing %q:\n%s", want, out)
		}
	}
}
