package main

import (
	"fmt"

	"github.com/apkforge/apksign/internal/keystore"
	"github.com/apkforge/apksign/internal/tool"
)

// Exit codes for CLI commands. External tool failures exit with the tool's
// own status instead of one of these.
const (
	exitSuccess         = 0
	exitError           = 1
	exitInvalidAlias    = 2
	exitToolNotFound    = 3
	exitKeystoreMissing = 4
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errInvalidAlias(token string) *ExitError {
	err := &keystore.InvalidAliasError{Token: token}
	return &ExitError{
		Code:    exitInvalidAlias,
		Message: err.Error(),
	}
}

func errToolNotFound(nf *tool.NotFoundError) *ExitError {
	return &ExitError{
		Code:    exitToolNotFound,
		Message: nf.Error(),
	}
}

func errKeystoreMissing(path string) *ExitError {
	return &ExitError{
		Code:    exitKeystoreMissing,
		Message: fmt.Sprintf("keystore %s not found; apk.keystore must sit beside the apksign binary", path),
	}
}

// errToolFailed passes an external tool's exit status through. The tool's
// own output already reached the terminal, so no extra message is printed.
func errToolFailed(es *tool.ExitStatusError) *ExitError {
	return &ExitError{
		Code:    es.Code,
		Message: "",
	}
}
