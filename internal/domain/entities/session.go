package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks the statistics of a single quiz run.
type Session struct {
	ID         uuid.UUID  // run identifier, attached to every log line
	Questions  int        // questions presented, retries included
	Correct    int        // questions eventually answered correctly
	FirstTry   int        // questions answered correctly on the first attempt
	Revealed   int        // questions whose answer had to be revealed
	Cycles     int        // completed passes over the deck
	StartedAt  time.Time  // timestamp when the run started
	FinishedAt *time.Time // timestamp when the last cycle completed (nullable)
}

// NewSession creates a new session starting now.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}

// RecordAnswer updates the counters after a question is graded.
// tries is the number of attempts it took, correct tells whether the last one succeeded.
func (s *Session) RecordAnswer(correct bool, tries int) {
	s.Questions++
	if !correct {
		s.Revealed++
		return
	}

	s.Correct++
	if tries == 1 {
		s.FirstTry++
	}
}

// Finish marks the session as completed and sets the completion timestamp.
func (s *Session) Finish() {
	now := time.Now()
	s.FinishedAt = &now
}

// Duration returns how long the session lasted, or has lasted so far.
func (s *Session) Duration() time.Duration {
	if s.FinishedAt == nil {
		return time.Since(s.StartedAt)
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
