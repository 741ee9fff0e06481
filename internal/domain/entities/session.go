package entities

import "time"

// SessionState is the lifecycle state of a quiz session.
type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionEnded      SessionState = "ended"
)

// InitialLives is the strike budget granted at the start of a session.
const InitialLives = 10

// Session represents a single play-through for one player.
// It tracks the question pointer, remaining lives, score and hint usage.
// All mutation goes through the session service; the terminal event loop
// serializes access, so no locking is needed.
type Session struct {
	ID           string       // unique session ID
	PlayerName   string       // player who started the session
	Difficulty   Difficulty   // selected difficulty tag
	Questions    []Question   // questions selected for this session
	CurrentIndex int          // index of the current question
	Lives        int          // remaining lives, never negative
	Score        int          // correct answers so far
	HintsUsed    int          // hint requests so far
	State        SessionState // current lifecycle state
	StartedAt    time.Time    // when the session started
	EndedAt      *time.Time   // when the session ended (nullable)

	// ResultRecorded marks that the result record reached the sink,
	// guarding against a double write.
	ResultRecorded bool
}

// NewSession creates an in-progress session over the given questions.
func NewSession(id, playerName string, difficulty Difficulty, questions []Question, lives int) *Session {
	return &Session{
		ID:         id,
		PlayerName: playerName,
		Difficulty: difficulty,
		Questions:  questions,
		Lives:      lives,
		State:      SessionInProgress,
		StartedAt:  time.Now(),
	}
}

// InProgress reports whether the session accepts answers.
func (s *Session) InProgress() bool {
	return s.State == SessionInProgress
}

// CurrentQuestion returns the question the session points at.
// ok is false when the pool is exhausted.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Advance moves the pointer to the next question and reports whether one remains.
func (s *Session) Advance() bool {
	s.CurrentIndex++
	return s.CurrentIndex < len(s.Questions)
}

// LoseLife decrements the life count, flooring at zero.
func (s *Session) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// End marks the session as ended and sets the end timestamp.
// Calling End on an already ended session is a no-op.
func (s *Session) End() {
	if s.State == SessionEnded {
		return
	}
	s.State = SessionEnded
	now := time.Now()
	s.EndedAt = &now
}

// Result finalizes a result record for this session.
func (s *Session) Result() *Result {
	finishedAt := time.Now()
	if s.EndedAt != nil {
		finishedAt = *s.EndedAt
	}

	return &Result{
		PlayerName:     s.PlayerName,
		Difficulty:     s.Difficulty,
		Score:          s.Score,
		TotalQuestions: len(s.Questions),
		LivesRemaining: s.Lives,
		HintsUsed:      s.HintsUsed,
		FinishedAt:     finishedAt,
	}
}
