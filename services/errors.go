package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks a missing or orphaned record. Controllers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError names the first input rule a request violates. It is never
// retried and nothing is persisted when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// notFoundOr translates a gorm record miss into ErrNotFound; everything else
// (backend unavailable etc.) propagates unchanged.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
