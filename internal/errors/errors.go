// Package errors provides structured error handling for nmap-navigator
// operations. It defines error codes and typed errors for the scan import
// pipeline, the domain store, and the API layer, plus utilities for
// classifying errors when mapping them to HTTP responses.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents different types of errors that can occur.
type ErrorCode string

const (
	CodeUnknown       ErrorCode = "UNKNOWN"
	CodeValidation    ErrorCode = "VALIDATION"
	CodeFormat        ErrorCode = "FORMAT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeInternal      ErrorCode = "INTERNAL"
	CodeConfiguration ErrorCode = "CONFIGURATION"
)

// FormatError represents a structurally invalid scan document: parseable XML
// that lacks the expected scan-run root, or XML the decoder rejects outright.
type FormatError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a format error with the given message.
func NewFormatError(message string) *FormatError {
	return &FormatError{Message: message}
}

// WrapFormatError wraps a decoder error as a format error.
func WrapFormatError(message string, err error) *FormatError {
	return &FormatError{Message: message, Cause: err}
}

// ValidationError represents a malformed or incomplete request.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	return e.Message
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a validation error for a specific field.
func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError represents a lookup for an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found (id: %s)", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// ErrNotFound creates a not-found error for the given entity type.
func ErrNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ErrNotFoundWithID creates a not-found error carrying the missing id.
func ErrNotFoundWithID(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InternalError represents an unexpected failure inside the store or server.
type InternalError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InternalError) Unwrap() error {
	return e.Cause
}

// WrapInternalError wraps an unexpected error.
func WrapInternalError(message string, err error) *InternalError {
	return &InternalError{Message: message, Cause: err}
}

// GetCode extracts the error code from an error if it has one.
func GetCode(err error) ErrorCode {
	var formatErr *FormatError
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var internalErr *InternalError

	switch {
	case errors.As(err, &formatErr):
		return CodeFormat
	case errors.As(err, &validationErr):
		return CodeValidation
	case errors.As(err, &notFoundErr):
		return CodeNotFound
	case errors.As(err, &internalErr):
		return CodeInternal
	}
	return CodeUnknown
}

// IsNotFound reports whether an error indicates a missing entity.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsFormat reports whether an error indicates an invalid scan document.
func IsFormat(err error) bool {
	return GetCode(err) == CodeFormat
}

// IsValidation reports whether an error indicates a malformed request.
func IsValidation(err error) bool {
	return GetCode(err) == CodeValidation
}
