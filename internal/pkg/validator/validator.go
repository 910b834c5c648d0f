// Package validator checks request DTOs against their `validate` tags.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate reports tag failures as a field to failed-rule map, nil when the
// value passes. Services treat any non-nil map as a validation error.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
