package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s], got %q", field, e.Param(), e.Value())
	case "capitalized":
		return fmt.Sprintf("%s: must be capitalized, got %q", field, e.Value())
	case "excluded_for_primary":
		return fmt.Sprintf("%s: not allowed on a primary guest", field)
	case "excluded_for_friend":
		return fmt.Sprintf("%s: not allowed on a friend", field)
	default:
		return fmt.Sprintf("%s: failed %s validation", field, e.Tag())
	}
}
