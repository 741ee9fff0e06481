package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
	"github.com/rdsafin/mathquiz/internal/service"
	"github.com/rdsafin/mathquiz/internal/storage"
)

type SessionService interface {
	Difficulties() []entities.Difficulty
	Start(playerName string, difficulty entities.Difficulty) (*entities.Session, error)
	SubmitAnswer(sess *entities.Session, answer string) (*service.AnswerFeedback, error)
	UseHint(sess *entities.Session) (string, error)
	Finish(sess *entities.Session) (*entities.Result, error)
}

type LeaderboardService interface {
	Record(ctx context.Context, res *entities.Result) error
	Top(ctx context.Context, limit int) ([]service.LeaderboardEntry, error)
	Stats(ctx context.Context, player string) (*service.PlayerStats, error)
}

type AnswerHistory interface {
	RecordAnswer(
		ctx context.Context,
		player string,
		difficulty entities.Difficulty,
		prompt string,
		correct bool,
		answeredAt time.Time,
	) error
}

// afterSessionAction is the player's choice on the end-of-session screen.
type afterSessionAction int

const (
	actionMenu afterSessionAction = iota
	actionRetry
	actionQuit
)

// Handler drives the terminal UI: it renders quiz state, collects user
// input and dispatches one action at a time to the session controller.
type Handler struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger

	quiz        SessionService
	leaderboard LeaderboardService
	history     AnswerHistory
	sessions    *storage.SessionStore

	leaderboardSize int
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	quiz SessionService,
	leaderboard LeaderboardService,
	history AnswerHistory,
	sessions *storage.SessionStore,
	leaderboardSize int,
) *Handler {
	return &Handler{
		in:              bufio.NewScanner(in),
		out:             out,
		logger:          logger,
		quiz:            quiz,
		leaderboard:     leaderboard,
		history:         history,
		sessions:        sessions,
		leaderboardSize: leaderboardSize,
	}
}

// Run executes the main menu loop until the player quits, input ends or
// the context is canceled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started")
	defer h.logger.Info("terminal handler stopped")

	h.print(msgWelcome)

	name, ok := h.promptName()
	if !ok {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, ok := h.promptMenu(name)
		if !ok {
			return nil
		}

		switch choice {
		case menuLeaderboard:
			h.showLeaderboard(ctx)

		case menuStats:
			h.showStats(ctx, name)

		case menuQuit:
			h.print(msgGoodbye)
			return nil

		default:
			difficulty := entities.Difficulty(choice)
			action := h.playSession(ctx, name, difficulty)
			for action == actionRetry {
				action = h.playSession(ctx, name, difficulty)
			}
			if action == actionQuit {
				h.print(msgGoodbye)
				return nil
			}
		}
	}
}

// promptName asks for the player's name until a non-empty one is entered.
func (h *Handler) promptName() (string, bool) {
	for {
		h.print(msgEnterName)
		line, ok := h.readLine()
		if !ok {
			return "", false
		}
		name := strings.TrimSpace(line)
		if name != "" {
			return name, true
		}
		h.print(msgNameRequired)
	}
}

// Reserved menu keys; everything else is treated as a difficulty choice.
const (
	menuLeaderboard = "leaderboard"
	menuStats       = "stats"
	menuQuit        = "quit"
)

// promptMenu renders the difficulty menu and returns the selected item.
func (h *Handler) promptMenu(name string) (string, bool) {
	difficulties := h.quiz.Difficulties()

	for {
		h.print(renderMenu(name, difficulties))
		line, ok := h.readLine()
		if !ok {
			return "", false
		}
		input := strings.ToLower(strings.TrimSpace(line))

		switch input {
		case "l":
			return menuLeaderboard, true
		case "s":
			return menuStats, true
		case "q":
			return menuQuit, true
		}

		// Number or name of a difficulty.
		for i, d := range difficulties {
			if input == string(d) || input == fmt.Sprintf("%d", i+1) {
				return string(d), true
			}
		}

		h.print(msgUnknownChoice)
	}
}

// playSession runs one quiz session from start to its end screen.
func (h *Handler) playSession(ctx context.Context, name string, difficulty entities.Difficulty) afterSessionAction {
	sess, err := h.quiz.Start(name, difficulty)
	if err != nil {
		h.logger.Error("failed to start session",
			zap.String("difficulty", string(difficulty)),
			zap.Error(err),
		)
		h.print(msgNoQuestions)
		return actionMenu
	}

	h.sessions.Store(sess)
	defer h.sessions.Delete(sess.ID)

	h.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("player", name),
		zap.String("difficulty", string(difficulty)),
	)

	outOfLives := h.questionLoop(ctx, sess)

	res, err := h.quiz.Finish(sess)
	if err != nil {
		h.logger.Error("failed to save session result",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		h.print(msgResultSaveFailed)
	} else if err = h.leaderboard.Record(ctx, res); err != nil {
		h.logger.Warn("failed to record leaderboard entry",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
	}

	if res == nil {
		return actionMenu
	}

	if outOfLives {
		h.print(formatGameOver(res))
	} else {
		h.print(formatFinalScore(res))
	}

	return h.promptAfterSession()
}

// questionLoop presents questions until the session leaves InProgress or
// the player quits early. Reports whether the session ended out of lives.
func (h *Handler) questionLoop(ctx context.Context, sess *entities.Session) (outOfLives bool) {
	for sess.InProgress() {
		q, ok := sess.CurrentQuestion()
		if !ok {
			return false
		}

		h.print(renderQuestion(sess, q))

		line, readOK := h.readLine()
		if !readOK {
			return false
		}
		input := strings.TrimSpace(line)

		switch strings.ToLower(input) {
		case "":
			h.print(msgAnswerRequired)
			continue

		case "h", "hint":
			hint, hintErr := h.quiz.UseHint(sess)
			if hintErr != nil {
				h.logger.Warn("hint request failed", zap.Error(hintErr))
				continue
			}
			if hint == "" {
				hint = msgNoHint
			}
			h.print(formatHint(hint))
			continue

		case "q", "quit":
			return false
		}

		answer := resolveAnswer(input, q)

		fb, err := h.quiz.SubmitAnswer(sess, answer)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotActive) {
				return false
			}
			h.logger.Error("failed to submit answer", zap.Error(err))
			continue
		}

		if histErr := h.history.RecordAnswer(
			ctx, sess.PlayerName, sess.Difficulty, q.Prompt, fb.Correct, time.Now(),
		); histErr != nil {
			h.logger.Warn("failed to record answer history", zap.Error(histErr))
		}

		h.print(formatFeedback(fb))

		if fb.OutOfLives {
			return true
		}
	}

	return false
}

// resolveAnswer maps an option letter to its option text; any other input
// is taken as a typed answer.
func resolveAnswer(input string, q entities.Question) string {
	if len(input) != 1 {
		return input
	}

	idx := int(strings.ToUpper(input)[0] - 'A')
	if idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}

	return input
}

// promptAfterSession asks what to do after the end-of-session screen.
func (h *Handler) promptAfterSession() afterSessionAction {
	for {
		h.print(msgAfterSession)
		line, ok := h.readLine()
		if !ok {
			return actionQuit
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "r", "retry":
			return actionRetry
		case "m", "menu":
			return actionMenu
		case "q", "quit":
			return actionQuit
		default:
			h.print(msgUnknownChoice)
		}
	}
}

func (h *Handler) showLeaderboard(ctx context.Context) {
	entries, err := h.leaderboard.Top(ctx, h.leaderboardSize)
	if err != nil {
		h.logger.Error("failed to load leaderboard", zap.Error(err))
		h.print(msgLeaderboardUnavailable)
		return
	}
	h.print(renderLeaderboard(entries))
}

func (h *Handler) showStats(ctx context.Context, name string) {
	stats, err := h.leaderboard.Stats(ctx, name)
	if err != nil {
		h.logger.Error("failed to load player stats",
			zap.String("player", name),
			zap.Error(err),
		)
		h.print(msgStatsUnavailable)
		return
	}
	h.print(renderStats(name, stats))
}

// readLine reads one line of input; ok is false when input is exhausted.
func (h *Handler) readLine() (string, bool) {
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

func (h *Handler) print(text string) {
	if _, err := fmt.Fprintln(h.out, text); err != nil {
		h.logger.Error("failed to write output", zap.Error(err))
	}
}
