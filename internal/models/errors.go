package models

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("user is not a member of the publisher team")
	ErrUnauthenticated    = errors.New("invalid JWT token")
	ErrNoChange           = errors.New("updated value matches the one stored in the database")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("must verify email first")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenNotYetExpired = errors.New("token has not yet expired")
)

// FieldError is a validation failure attached to one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors collects every per-field failure of a request.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
