package workflow

import (
	"errors"

	"calendar-assistant/internal/llm"
)

// ErrAttemptsExhausted is returned when a feedback round is requested
// after the attempt ceiling was reached. The only forward transition left
// is accepting the current artifact.
var ErrAttemptsExhausted = errors.New("maximum generation attempts reached")

// Session counts completed generation rounds for one request and enforces
// the attempt ceiling. The first round needs no feedback; every later
// round does.
type Session struct {
	maxAttempts int
	attempts    int
}

func NewSession(maxAttempts int) *Session {
	return &Session{maxAttempts: maxAttempts}
}

func (s *Session) Attempts() int   { return s.attempts }
func (s *Session) Exhausted() bool { return s.attempts >= s.maxAttempts }

// Begin authorizes one more generation round. Call Complete after the
// round finishes so the counter only reflects completed rounds.
func (s *Session) Begin() error {
	if s.Exhausted() {
		return ErrAttemptsExhausted
	}
	return nil
}

func (s *Session) Complete() {
	if s.attempts < s.maxAttempts {
		s.attempts++
	}
}

// ResumeSession rebuilds the attempt counter from a conversation: every
// assistant turn is one completed generation round. Lets a driver that is
// re-invoked per round (one process per job file) enforce the ceiling.
func ResumeSession(maxAttempts int, messages []llm.Message) *Session {
	s := NewSession(maxAttempts)
	for _, m := range messages {
		if m.Role == "assistant" {
			s.Complete()
		}
	}
	return s
}
