package tool

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an external tool binary could not be located.
type NotFoundError struct {
	Tool string
	Hint string
}

func (e *NotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s not found (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("%s not found", e.Tool)
}

// IsNotFound reports whether err indicates a missing tool binary.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ExitStatusError indicates an external tool ran but exited non-zero. The
// status is preserved so the CLI can pass it through unchanged.
type ExitStatusError struct {
	Tool string
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}
