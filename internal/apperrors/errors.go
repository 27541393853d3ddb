// Package apperrors defines the error kinds the API surfaces. Every terminal
// outcome is one of these codes; the HTTP layer maps them to status codes.
package apperrors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func Validation(msg string) *AppError {
	return New(CodeValidation, msg)
}

func InvalidArg(msg string) *AppError {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) *AppError {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) *AppError {
	return New(CodeAlreadyExists, msg)
}

func Unauthorized(msg string) *AppError {
	return New(CodeUnauthenticated, msg)
}

func Forbidden(msg string) *AppError {
	return New(CodePermissionDenied, msg)
}

func Storage(msg string, cause error) *AppError {
	return Wrap(CodeStorage, msg, cause)
}

func Internal(msg string) *AppError {
	return New(CodeInternal, msg)
}

// CodeOf extracts the error kind; anything untyped counts as internal.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
