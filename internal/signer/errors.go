package signer

import (
	"errors"
	"fmt"
)

// TargetError indicates the target archive is missing or unreadable. It is
// raised before any external tool runs, so a bad path never reaches zip or
// jarsigner.
type TargetError struct {
	Path string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// IsTargetError reports whether err indicates an inaccessible target archive.
func IsTargetError(err error) bool {
	var te *TargetError
	return errors.As(err, &te)
}
