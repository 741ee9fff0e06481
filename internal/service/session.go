package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

var (
	ErrSessionNotActive     = errors.New("session is not active")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrResultAlreadySaved   = errors.New("session result already saved")
)

// QuestionRepository provides the read-only question bank.
type QuestionRepository interface {
	Has(difficulty entities.Difficulty) bool
	GetByDifficulty(difficulty entities.Difficulty) ([]entities.Question, error)
	Difficulties() []entities.Difficulty
}

// ResultSink receives one record per finished session.
type ResultSink interface {
	Append(res *entities.Result) error
}

// AnswerFeedback describes the outcome of one submitted answer.
type AnswerFeedback struct {
	Correct        bool
	CorrectAnswer  string
	LivesRemaining int
	State          entities.SessionState
	OutOfLives     bool // session ended because lives reached zero
}

// SessionService is the quiz session controller. It owns all session state
// transitions: start, submit-answer, use-hint and finish. Side effects are
// limited to state mutation plus one write to the result sink per session.
type SessionService struct {
	questionRepo QuestionRepository
	resultSink   ResultSink
	selector     *QuestionSelector
	validator    *AnswerValidator

	lives      int
	quizLength int
}

// NewSessionService creates a new SessionService. lives and quizLength
// fall back to the defaults when non-positive.
func NewSessionService(
	questionRepo QuestionRepository,
	resultSink ResultSink,
	selector *QuestionSelector,
	validator *AnswerValidator,
	lives int,
	quizLength int,
) *SessionService {
	if lives <= 0 {
		lives = entities.InitialLives
	}
	if quizLength <= 0 {
		quizLength = defaultQuizLength
	}

	return &SessionService{
		questionRepo: questionRepo,
		resultSink:   resultSink,
		selector:     selector,
		validator:    validator,
		lives:        lives,
		quizLength:   quizLength,
	}
}

// defaultQuizLength caps a session at ten questions for a quick game.
const defaultQuizLength = 10

// Difficulties returns the difficulty tags known to the bank.
func (s *SessionService) Difficulties() []entities.Difficulty {
	return s.questionRepo.Difficulties()
}

// Start begins a new session for the given player and difficulty.
// It selects up to the configured number of questions in random order
// and resets lives and score.
func (s *SessionService) Start(playerName string, difficulty entities.Difficulty) (*entities.Session, error) {
	if !s.questionRepo.Has(difficulty) {
		return nil, fmt.Errorf("start session: unknown difficulty %q", difficulty)
	}

	pool, err := s.questionRepo.GetByDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	questions := s.selector.Select(pool, s.quizLength)

	return entities.NewSession(uuid.NewString(), playerName, difficulty, questions, s.lives), nil
}

// SubmitAnswer checks the answer against the current question. A correct
// answer increments the score and advances; an incorrect one costs a life.
// The session ends when lives reach zero or the pool is exhausted.
func (s *SessionService) SubmitAnswer(sess *entities.Session, answer string) (*AnswerFeedback, error) {
	if !sess.InProgress() {
		return nil, ErrSessionNotActive
	}

	q, ok := sess.CurrentQuestion()
	if !ok {
		sess.End()
		return nil, ErrNoQuestionsAvailable
	}

	correct := s.validator.Validate(answer, q.Answer)

	if correct {
		sess.Score++
		if !sess.Advance() {
			sess.End()
		}
	} else {
		sess.LoseLife()
		if sess.Lives == 0 {
			sess.End()
		} else if !sess.Advance() {
			sess.End()
		}
	}

	return &AnswerFeedback{
		Correct:        correct,
		CorrectAnswer:  q.Answer,
		LivesRemaining: sess.Lives,
		State:          sess.State,
		OutOfLives:     sess.Lives == 0,
	}, nil
}

// UseHint returns the current question's hint text and counts the request.
// Hints are unlimited and never change lives or score. The returned string
// is empty when the question carries no hint.
func (s *SessionService) UseHint(sess *entities.Session) (string, error) {
	if !sess.InProgress() {
		return "", ErrSessionNotActive
	}

	q, ok := sess.CurrentQuestion()
	if !ok {
		return "", ErrNoQuestionsAvailable
	}

	sess.HintsUsed++
	return q.Hint, nil
}

// Finish ends the session if it is still in progress, finalizes its result
// record and hands it to the result sink. A sink failure is returned to the
// caller together with the record; it is neither silently dropped nor
// retried. Finishing the same session twice is an error.
func (s *SessionService) Finish(sess *entities.Session) (*entities.Result, error) {
	if sess.State == entities.SessionNotStarted {
		return nil, ErrSessionNotActive
	}
	if sess.ResultRecorded {
		return nil, ErrResultAlreadySaved
	}

	sess.End()
	res := sess.Result()

	if err := s.resultSink.Append(res); err != nil {
		return res, fmt.Errorf("save session result: %w", err)
	}
	sess.ResultRecorded = true

	return res, nil
}
