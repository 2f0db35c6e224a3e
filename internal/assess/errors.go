package assess

import (
	"fmt"
	"strings"
)

// ValidationError means the input was too incomplete to assess at all. It
// is the caller's cue to ask for more information; it must never be
// presented as a low compatibility score.
type ValidationError struct {
	Field    string
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) > 0 {
		return fmt.Sprintf("cannot assess %s: %s", e.Field, strings.Join(e.Problems, "; "))
	}
	return fmt.Sprintf("cannot assess: missing required %s", e.Field)
}
