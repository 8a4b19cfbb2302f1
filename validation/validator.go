package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/obtkit/errors"
	"github.com/kbukum/obtkit/result"
	"github.com/kbukum/obtkit/util"
)

// Status classifies a validation outcome.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Validator collects validation errors.
type Validator struct {
	errors []errors.FieldError
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]errors.FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, errors.FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []errors.FieldError {
	return v.errors
}

// Validate returns an *errors.Error listing every field failure, or nil.
func (v *Validator) Validate() *errors.Error {
	if !v.HasErrors() {
		return nil
	}
	return errors.Validation(v.errors)
}

// Err is Validate typed as error, so a clean validator yields a nil interface.
func (v *Validator) Err() error {
	if e := v.Validate(); e != nil {
		return e
	}
	return nil
}

// Outcome reports the validation as an OperationResult carrying payload.
// The field failures travel as details.
func Outcome[P any](v *Validator, payload P) *result.OperationResult[Status, P, []errors.FieldError] {
	if !v.HasErrors() {
		r := result.Success[Status, P, []errors.FieldError](payload)
		r.SetStatus(StatusValid)
		return r
	}
	e := v.Validate()
	r := result.Failure[Status, P, []errors.FieldError](e, StatusInvalid)
	r.SetPayload(payload)
	r.SetDetails(e.Fields())
	return r
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) *Validator {
	if util.IsBlank(value) {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredPtr checks that a string pointer is set and not blank.
func (v *Validator) RequiredPtr(field string, value *string) *Validator {
	if util.IsNullOrWhitespace(value) {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if util.IsBlank(value) {
		v.AddError(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}

	if parsed == uuid.Nil {
		v.AddError(field, "must not be empty")
	}

	return v
}

// OptionalUUID checks if a non-empty string is a valid UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if util.IsEmpty(value) {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.AddError(field, "must be a valid UUID")
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// MinLength checks if a string meets minimum length.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if len(value) < minLen {
		v.AddError(field, fmt.Sprintf("must be at least %d characters", minLen))
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// Pattern checks if a string matches a regex pattern. Empty values pass.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if util.IsEmpty(value) {
		return v
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		v.AddError(field, "does not match required format")
	}
	return v
}

// HexString checks that a non-empty value is uppercase hexadecimal of even length.
func (v *Validator) HexString(field, value string) *Validator {
	return v.Pattern(field, value, `^(?:[0-9A-F]{2})+$`)
}

// OneOf checks if a value is one of the allowed values. Empty values pass.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if util.IsEmpty(value) {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required validates a single required field and returns an error if blank.
func Required(field, value string) error {
	return New().Required(field, value).Err()
}

// ValidateUUID validates and parses a UUID string.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if util.IsBlank(value) {
		return uuid.Nil, errors.Newf("%s is required", field)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "%s must be a valid UUID", field)
	}

	return id, nil
}
