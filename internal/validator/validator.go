// Package validator wraps go-playground/validator to give request DTOs
// consistent, human-readable field errors.
//
// Field names in errors use the struct's json tag, so they match what the
// client sent:
//
//	if err := validator.Validate(req); err != nil {
//	    var verrs validator.ValidationErrors
//	    errors.As(err, &verrs)
//	}
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// V is the singleton validator instance. It is safe for concurrent use.
var V *validator.Validate

func init() {
	V = validator.New(validator.WithRequiredStructEnabled())
	V.RegisterTagNameFunc(jsonFieldName)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

// Validate validates a struct and returns ValidationErrors if invalid
func Validate(v any) error {
	err := V.Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		// InvalidValidationError: programming error, not bad input
		return err
	}
	return formatValidationErrors(errs)
}

// formatValidationErrors converts validator errors to ValidationErrors
func formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationError{
			Field:   e.Field(),
			Message: getErrorMessage(e),
		})
	}
	return out
}

// jsonFieldName returns the json tag name of a struct field, falling back to the Go name.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// getErrorMessage returns a human-readable error message for a validation error
func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_if":
		cond := strings.Fields(e.Param())
		if len(cond) == 2 {
			return fmt.Sprintf("is required when %s is %s", strings.ToLower(cond[0]), cond[1])
		}
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}

// IsValidationError checks if an error is a ValidationErrors
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
