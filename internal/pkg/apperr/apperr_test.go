package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchingByCode(t *testing.T) {
	err := NotFound("note not found")

	assert.True(t, errors.Is(err, NotFound("anything")))
	assert.False(t, errors.Is(err, Forbidden("anything")))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestErrorMatchingThroughWrapping(t *testing.T) {
	inner := Unauthorized("workspace does not belong to caller company")
	wrapped := fmt.Errorf("update note: %w", inner)

	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("could not commit transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORAGE_FAILURE")
	assert.Contains(t, err.Error(), "connection reset")
}
