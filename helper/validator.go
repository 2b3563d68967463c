package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type InputValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Tag     string `json:"tag"`
}

func (err *InputValidationError) Error() string {
	return err.Message
}

// FormatValidationErrors flattens a validator error into one entry per
// violated field, so a response can report every problem at once.
func FormatValidationErrors(err error) []InputValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []InputValidationError{{Message: err.Error()}}
	}

	formatted := make([]InputValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		formatted = append(formatted, InputValidationError{
			Message: reasonFor(fieldErr),
			Field:   fieldErr.Field(),
			Tag:     fieldErr.Tag(),
		})
	}

	return formatted
}

func reasonFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "required field missing"
	case "email":
		return "invalid format"
	case "gte", "lte", "min", "max":
		return fmt.Sprintf("value out of range (%s=%s)", fieldErr.Tag(), fieldErr.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fieldErr.Tag())
	}
}
