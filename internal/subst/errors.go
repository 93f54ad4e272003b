package subst

import "errors"

var (
	// ErrUnterminated is reported when a "${" has no matching "}".
	ErrUnterminated = errors.New("unterminated variable reference")
	// ErrExpansionLimit is reported when recursive expansion does not settle.
	ErrExpansionLimit = errors.New("variable expansion limit exceeded")
)
