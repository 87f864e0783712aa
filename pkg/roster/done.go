package roster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDoneStatus is returned when text cannot be read as a done status
var ErrInvalidDoneStatus = errors.New("invalid done status")

// DoneStatus is the completion state of a task
type DoneStatus int

const (
	NotDone DoneStatus = iota
	Done
)

// Stored column values. They match what earlier versions wrote as free text.
const (
	doneYes = "Yes"
	doneNo  = "No"
)

// String returns the value persisted in the done column
func (d DoneStatus) String() string {
	if d == Done {
		return doneYes
	}
	return doneNo
}

// ParseDoneStatus reads a user answer or a stored column value
func ParseDoneStatus(s string) (DoneStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "done", "true", "1":
		return Done, nil
	case "no", "n", "not done", "false", "0":
		return NotDone, nil
	default:
		return NotDone, fmt.Errorf("%w: %q (answer yes or no)", ErrInvalidDoneStatus, s)
	}
}
