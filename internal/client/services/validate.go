package services

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

const minNameLength = 2

// validationError mirrors the shape of a backend rejection so callers can
// render pre-flight failures the same way.
func validationError(field, msg string) error {
	return &api.Error{
		Message: msg,
		Status:  422,
		Fields:  []api.FieldError{{Field: field, Message: msg}},
	}
}

func validateName(field, value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minNameLength {
		return validationError(field, "Name must be at least 2 characters")
	}
	return nil
}

func validateTitle(value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minNameLength {
		return validationError("title", "Title must be at least 2 characters")
	}
	return nil
}

func validateIdentifier(value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError("identifier", "Enter a username or email")
	}
	return nil
}

func validateStatus(status models.TaskStatus) error {
	if !status.Valid() {
		return validationError("status", "Unknown task status")
	}
	return nil
}
