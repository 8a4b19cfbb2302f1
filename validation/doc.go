// Package validation provides input validation for obtkit applications.
//
// Struct tag validation goes through go-playground/validator; programmatic
// validation collects failures on a Validator. Both report failures as an
// *errors.Error whose Fields list every offending field.
//
// # Struct Tag Validation
//
//	type Input struct {
//	    Name string `mapstructure:"name" validate:"required,min=2"`
//	}
//	err := validation.ValidateStruct(in)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).RequiredUUID("id", id)
//	err := v.Err()
package validation
