package repl

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one run of the menu
type Session struct {
	ID        string    // Unique session ID
	StartTime time.Time // Session start time
	Verbose   bool      // Diagnostics go to stderr
	History   []string  // Menu choices in the order entered
}

// NewSession creates a new session with a random ID
func NewSession(verbose bool) *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		Verbose:   verbose,
		History:   []string{},
	}
}

// ShortID returns the first block of the session ID, used as a log prefix
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// AddToHistory adds a menu choice to the history
func (s *Session) AddToHistory(choice string) {
	s.History = append(s.History, choice)
}

// GetHistory returns the choice history
func (s *Session) GetHistory() []string {
	return append([]string{}, s.History...)
}
