package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewFormatError("invalid nmap XML format: missing nmaprun element")

		assert.Equal(t, "invalid nmap XML format: missing nmaprun element", err.Error())
		assert.Equal(t, CodeFormat, GetCode(err))
		assert.True(t, IsFormat(err))
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("unexpected EOF")
		err := WrapFormatError("failed to parse nmap XML", cause)

		assert.Contains(t, err.Error(), "failed to parse nmap XML")
		assert.Contains(t, err.Error(), "unexpected EOF")
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("invalid request body")
	assert.Equal(t, "invalid request body", err.Error())
	assert.True(t, IsValidation(err))

	fieldErr := NewFieldValidationError("status", "must be one of untested, valid, invalid")
	assert.Contains(t, fieldErr.Error(), "status")
	assert.Equal(t, CodeValidation, GetCode(fieldErr))
}

func TestNotFoundError(t *testing.T) {
	err := ErrNotFound("host")
	assert.Equal(t, "host not found", err.Error())
	assert.True(t, IsNotFound(err))

	withID := ErrNotFoundWithID("service", "abc-123")
	assert.Contains(t, withID.Error(), "service not found")
	assert.Contains(t, withID.Error(), "abc-123")
	assert.Equal(t, CodeNotFound, GetCode(withID))
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := WrapInternalError("unexpected failure", cause)

	assert.Contains(t, err.Error(), "unexpected failure")
	assert.Equal(t, CodeInternal, GetCode(err))
	assert.Equal(t, cause, err.Unwrap())
}

func TestGetCodeWrappedError(t *testing.T) {
	inner := NewFormatError("bad document")
	wrapped := fmt.Errorf("import failed: %w", inner)

	assert.Equal(t, CodeFormat, GetCode(wrapped))
	assert.True(t, IsFormat(wrapped))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain error")))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
	assert.False(t, IsFormat(nil))
}
