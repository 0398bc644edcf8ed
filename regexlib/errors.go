package regexlib

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern is matched by every compilation failure.
var ErrMalformedPattern = errors.New("malformed pattern")

// MalformedPatternError describes why a pattern could not be compiled.
// Pos is a byte offset into Pattern, or -1 when the failure has no single
// location (for instance leftover fragments after building).
type MalformedPatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *MalformedPatternError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("malformed pattern %q: %s", e.Pattern, e.Msg)
	}
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
}

func (e *MalformedPatternError) Is(target error) bool { return target == ErrMalformedPattern }

func malformed(pattern string, pos int, format string, args ...any) error {
	return &MalformedPatternError{Pattern: pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
