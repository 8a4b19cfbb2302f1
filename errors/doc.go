// Package errors provides the general-purpose error type of obtkit.
//
// An Error carries an optional message and an optional single-level cause.
// It can be returned directly or captured inside a result.OperationResult for
// non-exceptional reporting; the package does not favor either style.
//
// # Construction
//
//	errors.New("record missing")
//	errors.Wrap(err, "load failed")
//	errors.FromCause(err)
//	errors.Newf("code=%d", 42)
//	errors.Wrapf(err, "load %s", name)
//	errors.Build(errors.Options{Format: "code=%d", Args: []any{42}})
//
// Newf and Wrapf panic on a template/argument mismatch; Build returns
// ErrBadFormat instead.
package errors
