// Package validation checks request models against their `validate` struct
// tags before they are sent.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so messages match the JSON the
	// server would have rejected.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	return v
}

// Struct validates s and returns one readable problem per failing field.
// A nil slice means s is valid. Errors other than field failures, such as
// passing a non-struct, are returned as a single problem.
func Struct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, formatFieldError(fe))
	}

	return problems
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if isNumeric(e.Kind()) {
			return fmt.Sprintf("%s must be at least %s", field, e.Param())
		}

		return fmt.Sprintf("%s must contain at least %s items", field, e.Param())
	case "max":
		if isNumeric(e.Kind()) {
			return fmt.Sprintf("%s must be at most %s", field, e.Param())
		}

		return fmt.Sprintf("%s must contain at most %s items", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "uuid":
		return field + " must be a valid UUID"
	case "email":
		return field + " must be a valid email"
	default:
		return field + " is invalid"
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
