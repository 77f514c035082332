package keystore

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidAliasError indicates an alias token outside the recognized set.
type InvalidAliasError struct {
	Token string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("unknown key alias '%s' (expected one of: %s)",
		e.Token, strings.Join(Aliases(), ", "))
}

// IsInvalidAlias reports whether err indicates an unrecognized alias token.
func IsInvalidAlias(err error) bool {
	var ia *InvalidAliasError
	return errors.As(err, &ia)
}
