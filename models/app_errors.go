package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Классы бизнес-ошибок, контроллер по ним подбирает http-статус.
// Всё остальное считается внутренней ошибкой (500)
type ErrorKind int

const (
	ErrKindValidation ErrorKind = iota
	ErrKindConflict
	ErrKindNotFound
	ErrKindAuthorization
	ErrKindState
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindConflict:
		return fiber.StatusConflict
	case ErrKindNotFound:
		return fiber.StatusNotFound
	case ErrKindAuthorization:
		return fiber.StatusForbidden
	case ErrKindValidation, ErrKindState:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func newAppError(kind ErrorKind, format string, args ...interface{}) error {
	return &AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewValidationError(format string, args ...interface{}) error {
	return newAppError(ErrKindValidation, format, args...)
}

func NewConflictError(format string, args ...interface{}) error {
	return newAppError(ErrKindConflict, format, args...)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return newAppError(ErrKindNotFound, format, args...)
}

func NewAuthorizationError(format string, args ...interface{}) error {
	return newAppError(ErrKindAuthorization, format, args...)
}

func NewStateError(format string, args ...interface{}) error {
	return newAppError(ErrKindState, format, args...)
}

func isKind(err error, kind ErrorKind) bool {
	appErr := &AppError{}
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsValidationError(err error) bool    { return isKind(err, ErrKindValidation) }
func IsConflictError(err error) bool      { return isKind(err, ErrKindConflict) }
func IsNotFoundError(err error) bool      { return isKind(err, ErrKindNotFound) }
func IsAuthorizationError(err error) bool { return isKind(err, ErrKindAuthorization) }
func IsStateError(err error) bool         { return isKind(err, ErrKindState) }
