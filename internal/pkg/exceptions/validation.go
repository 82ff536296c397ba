package exceptions

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
)

var validationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "is too short",
	"max":      "is too long",
	"oneof":    "must be one of the allowed values",
	"e164":     "must be an international phone number",
	"datetime": "has an invalid format",
	"url":      "must be a valid URL",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		message, ok := validationErrorMessages[firstErr.Tag()]
		if !ok {
			message = "is invalid"
		}
		return fieldName + " " + message
	}
	return constvars.ErrClientCannotProcessRequest
}

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrClientCannotProcessRequest
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		message, ok := validationErrorMessages[fieldErr.Tag()]
		if !ok {
			message = "is invalid"
		}
		messages = append(messages, fieldName+" "+message)
	}
	return strings.Join(messages, ", ")
}
