package errors

import (
	stderrors "errors"
)

// IsError checks if err is, or wraps, an *Error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Ensure returns err as an *Error. Nil stays nil, an *Error found in the
// chain is returned as-is, anything else is adopted through FromCause.
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := AsError(err); ok {
		return e
	}
	return FromCause(err)
}
