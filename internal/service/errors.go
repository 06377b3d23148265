package service

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a service wraps exactly one of them,
// and the HTTP layer maps the class to a status code.
var (
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrPersistence  = errors.New("storage failure")
)

var (
	ErrUsernameTaken         = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken            = fmt.Errorf("%w: email address is already in use", ErrConflict)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrRecipeNotFound        = fmt.Errorf("%w: recipe not found", ErrNotFound)
	ErrInvalidCredentials    = fmt.Errorf("%w: wrong username or password", ErrUnauthorized)
	ErrForbiddenUserDeletion = fmt.Errorf("%w: users can only delete their own account", ErrUnauthorized)
)

// ValidationError describes a single invalid input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// persistence wraps a storage error. The driver message stays in the chain for
// logging but never reaches a client.
func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
