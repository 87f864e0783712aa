package repl

import (
	"fmt"
	"io"
	"log"
)

// ConfigureLogging points the log package at w, prefixed with the session
// ID. A nil w discards log output. The returned function restores the
// previous settings.
func ConfigureLogging(s *Session, w io.Writer) func() {
	prevOut := log.Writer()
	prevPrefix := log.Prefix()
	prevFlags := log.Flags()

	if w == nil {
		w = io.Discard
	}
	log.SetOutput(w)
	log.SetPrefix(fmt.Sprintf("[%s] ", s.ShortID()))
	log.SetFlags(log.Ltime | log.Lmsgprefix)

	return func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	}
}

// debugf logs only in verbose sessions
func (s *Session) debugf(format string, args ...interface{}) {
	if s != nil && s.Verbose {
		log.Printf(format, args...)
	}
}
