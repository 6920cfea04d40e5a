package errors

import (
	"net/http"
	"testing"

	"farmlease/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("name is required")
	again := detailed.WithDetails("sizeM2 must be at least 0")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.True(t, errors.Is(again, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrForbidden))
	assert.Equal(t, "Invalid input: sizeM2 must be at least 0", again.Error())
	assert.Empty(t, ErrValidationFailed.Details(), "predefined error is never mutated")
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrForbidden.WrapMessage("plot is not visible to caller")

	assert.True(t, errors.Is(err, ErrForbidden))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "plot is not visible to caller")
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := errors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "failed to create plot")

	assert.True(t, errors.Is(err, driverErr))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create plot", err.Details())
}
