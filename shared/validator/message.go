package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	messageFallback  = "{field} is invalid"
	messageSeparator = "; "
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"date":     "{field} must be a date formatted as YYYY-MM-DD",
	}
)

// message renders every failed field, in declaration order.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			template = messageFallback
		}

		parts = append(parts, strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		).Replace(template))
	}

	return strings.Join(parts, messageSeparator)
}
