package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPriority is returned for a priority that is not an integer
	ErrInvalidPriority = errors.New("priority must be a whole number")
	// ErrInvalidWorkerID is returned for a worker id that is not an integer
	ErrInvalidWorkerID = errors.New("worker id must be a whole number")
)

// ParsePriority converts user input to a task priority.
// Only surrounding whitespace is forgiven.
func ParsePriority(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// ParseWorkerID converts user input to a worker id. The id is not checked
// against existing workers.
func ParseWorkerID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWorkerID, s)
	}
	return id, nil
}
