package result

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kbukum/obtkit/logger"
)

// noneText is rendered in place of an absent error.
const noneText = "None"

// OperationResult reports the outcome of an operation without failing it.
// S is the application status code type, P the payload type and D the type
// of auxiliary details. No rule ties the fields together.
//
// An OperationResult is not safe for concurrent mutation.
type OperationResult[S, P, D any] struct {
	succeeded bool
	details   *D
	payload   *P
	err       error
	status    *S
}

// New creates a result with every field given. A nil err leaves the error
// absent; the other optional fields are always present.
func New[S, P, D any](succeeded bool, details D, payload P, err error, status S) *OperationResult[S, P, D] {
	return &OperationResult[S, P, D]{
		succeeded: succeeded,
		details:   &details,
		payload:   &payload,
		err:       err,
		status:    &status,
	}
}

// Empty creates a failed result with every optional field absent.
func Empty[S, P, D any]() *OperationResult[S, P, D] {
	return &OperationResult[S, P, D]{}
}

// Success creates a succeeded result carrying payload.
func Success[S, P, D any](payload P) *OperationResult[S, P, D] {
	return &OperationResult[S, P, D]{succeeded: true, payload: &payload}
}

// Failure creates a failed result carrying err and status.
func Failure[S, P, D any](err error, status S) *OperationResult[S, P, D] {
	return &OperationResult[S, P, D]{err: err, status: &status}
}

// --- accessors ---

// Succeeded reports whether the operation completed successfully.
func (r *OperationResult[S, P, D]) Succeeded() bool { return r.succeeded }

// Details returns the auxiliary details and whether they are present.
func (r *OperationResult[S, P, D]) Details() (D, bool) { return get(r.details) }

// Payload returns the payload and whether it is present.
func (r *OperationResult[S, P, D]) Payload() (P, bool) { return get(r.payload) }

// Err returns the captured error, or nil.
func (r *OperationResult[S, P, D]) Err() error { return r.err }

// Status returns the status code and whether it is present.
func (r *OperationResult[S, P, D]) Status() (S, bool) { return get(r.status) }

// --- mutators ---

func (r *OperationResult[S, P, D]) SetSucceeded(v bool) { r.succeeded = v }
func (r *OperationResult[S, P, D]) SetDetails(v D)      { r.details = &v }
func (r *OperationResult[S, P, D]) SetPayload(v P)      { r.payload = &v }
func (r *OperationResult[S, P, D]) SetErr(err error)    { r.err = err }
func (r *OperationResult[S, P, D]) SetStatus(v S)       { r.status = &v }

// ClearDetails makes the details absent.
func (r *OperationResult[S, P, D]) ClearDetails() { r.details = nil }

// ClearPayload makes the payload absent.
func (r *OperationResult[S, P, D]) ClearPayload() { r.payload = nil }

// ClearStatus makes the status code absent.
func (r *OperationResult[S, P, D]) ClearStatus() { r.status = nil }

// --- rendering ---

// String renders the result on a single line. Absent values print as <nil>
// and an absent error as None.
func (r *OperationResult[S, P, D]) String() string {
	errText := noneText
	if r.err != nil {
		errText = r.err.Error()
	}
	return fmt.Sprintf("[Operation succeded: %t, Additional details: %s, Result: %s, Error code: %s, Error information: %s]",
		r.succeeded,
		text(r.details),
		text(r.payload),
		text(r.status),
		errText,
	)
}

// Fields returns the present fields as a logger field map.
func (r *OperationResult[S, P, D]) Fields() map[string]interface{} {
	fields := map[string]interface{}{logger.FieldSucceeded: r.succeeded}
	if r.status != nil {
		fields[logger.FieldStatus] = *r.status
	}
	if r.payload != nil {
		fields[logger.FieldPayload] = *r.payload
	}
	if r.details != nil {
		fields[logger.FieldDetails] = *r.details
	}
	if r.err != nil {
		fields[logger.FieldError] = r.err.Error()
	}
	return fields
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r *OperationResult[S, P, D]) MarshalZerologObject(e *zerolog.Event) {
	e.Bool(logger.FieldSucceeded, r.succeeded)
	if r.status != nil {
		e.Interface(logger.FieldStatus, *r.status)
	}
	if r.payload != nil {
		e.Interface(logger.FieldPayload, *r.payload)
	}
	if r.details != nil {
		e.Interface(logger.FieldDetails, *r.details)
	}
	if r.err != nil {
		e.Str(logger.FieldError, r.err.Error())
	}
}

// Log writes the result to l: info level when it succeeded, error otherwise.
func (r *OperationResult[S, P, D]) Log(l *logger.Logger, msg string) {
	if r.succeeded {
		l.Info(msg, r.Fields())
		return
	}
	l.Error(msg, r.Fields())
}

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func text[T any](p *T) string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprint(*p)
}
