package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFormat reports a message template whose verbs and operands do not match.
var ErrBadFormat = stderrors.New("errors: malformed message format")

// Error is the general-purpose error type of the kit. It carries an optional
// message and an optional single-level cause, both fixed at construction.
type Error struct {
	message string
	cause   error
	// derived marks a message copied from the cause.
	derived bool
	// fields holds per-field validation failures; nil for every other error.
	fields []FieldError
}

// FieldError describes a validation failure for a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Options is the configuration form of the constructor set. When Format is
// set it is rendered with Args and replaces Message.
type Options struct {
	Message string
	Cause   error
	Format  string
	Args    []any
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.derived && e.cause != nil:
		return e.cause.Error()
	case e.message != "" && e.cause != nil:
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	case e.message != "":
		return e.message
	case e.cause != nil:
		return e.cause.Error()
	default:
		return ""
	}
}

// Message returns the rendered message, empty when none was given.
func (e *Error) Message() string { return e.message }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.cause }

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.cause }

// Fields returns a copy of the attached field failures.
func (e *Error) Fields() []FieldError {
	if len(e.fields) == 0 {
		return nil
	}
	out := make([]FieldError, len(e.fields))
	copy(out, e.fields)
	return out
}

// --- Constructors ---

// Blank creates an error with neither message nor cause.
func Blank() *Error {
	return &Error{}
}

// New creates an error carrying message.
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap creates an error carrying message and cause.
func Wrap(cause error, message string) *Error {
	return &Error{message: message, cause: cause}
}

// FromCause creates an error whose message is the cause's own rendering.
// Error then prints the cause once.
func FromCause(cause error) *Error {
	e := &Error{cause: cause}
	if cause != nil {
		e.message = cause.Error()
		e.derived = true
	}
	return e
}

// Newf creates an error whose message is format rendered with args.
// It panics if format and args do not match.
func Newf(format string, args ...any) *Error {
	msg, err := render(format, args)
	if err != nil {
		panic(err)
	}
	return &Error{message: msg}
}

// Wrapf creates an error with a formatted message and an attached cause.
// It panics if format and args do not match.
func Wrapf(cause error, format string, args ...any) *Error {
	msg, err := render(format, args)
	if err != nil {
		panic(err)
	}
	return &Error{message: msg, cause: cause}
}

// Build creates an error from opts, returning ErrBadFormat when the
// template cannot be rendered with the supplied arguments.
func Build(opts Options) (*Error, error) {
	e := &Error{message: opts.Message, cause: opts.Cause}
	if opts.Format != "" {
		msg, err := render(opts.Format, opts.Args)
		if err != nil {
			return nil, err
		}
		e.message = msg
	}
	return e, nil
}

// Validation creates an error listing field failures; the message joins
// them as "field: message" pairs.
func Validation(fields []FieldError) *Error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + ": " + f.Message
	}
	e := &Error{message: strings.Join(parts, "; ")}
	if len(fields) > 0 {
		e.fields = make([]FieldError, len(fields))
		copy(e.fields, fields)
	}
	return e
}

// render formats eagerly and rejects the error markers fmt writes for
// missing or extra operands and bad verbs. Markers already present in the
// template, or in an operand each time a verb prints it, are expected.
func render(format string, args []any) (string, error) {
	out := fmt.Sprintf(format, args...)
	want := strings.Count(format, "%!")
	for _, i := range operandRefs(format) {
		if i >= 0 && i < len(args) {
			want += strings.Count(fmt.Sprint(args[i]), "%!")
		}
	}
	if strings.Count(out, "%!") > want {
		return "", fmt.Errorf("%w: %q: %s", ErrBadFormat, format, out)
	}
	return out, nil
}

// operandRefs lists, for each verb in format, the index of the operand it
// prints. Star widths and precisions consume an operand but are not listed.
func operandRefs(format string) []int {
	var refs []int
	next := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
	flags:
		for i < len(format) {
			switch c := format[i]; {
			case c == '[':
				end := strings.IndexByte(format[i:], ']')
				if end < 0 {
					return refs
				}
				if n, err := strconv.Atoi(format[i+1 : i+end]); err == nil {
					next = n - 1
				}
				i += end + 1
			case c == '*':
				next++
				i++
			case strings.IndexByte("+-# 0.123456789", c) >= 0:
				i++
			default:
				break flags
			}
		}
		if i >= len(format) {
			break
		}
		if format[i] == '%' {
			continue
		}
		refs = append(refs, next)
		next++
	}
	return refs
}

// --- Standard library passthroughs ---

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Unwrap returns the result of calling Unwrap on err.
func Unwrap(err error) error { return stderrors.Unwrap(err) }
