package prereq

import "errors"

var (
	// ErrUnresolvableToken is returned only in strict mode when a
	// prerequisite token cannot be resolved to a course ID, name or code.
	// In default (non-strict) mode the token is dropped and logged instead.
	ErrUnresolvableToken = errors.New("prereq: unresolvable token")
)
