package alpplot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("unknown input format")
	ErrMissingBranch = errors.New("missing branch")
)

// MalformedEventError is returned for events whose slices disagree in length
// or whose particle count is neither 8 nor 9.
type MalformedEventError struct {
	// mass, px, py and, when the event has them, pz and energy
	Lengths    []int
	Mismatched bool
}

var lengthNames = [...]string{"masses", "px", "py", "pz", "energy"}

func (e *MalformedEventError) Error() string {
	if e.Mismatched {
		parts := make([]string, len(e.Lengths))
		for i, n := range e.Lengths {
			parts[i] = fmt.Sprintf("%s=%d", lengthNames[i], n)
		}
		return "mismatched lengths: " + strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%d particles, expected %d or %d", e.Lengths[0], degradedLayout, fullLayout)
}

// SourceError represents a failure to open or read an event file.
type SourceError struct {
	Path string
	Op   string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
