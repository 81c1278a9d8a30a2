package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := Validation("tree must be an array")

	assert.Equal(t, "tree must be an array", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrProductNotFound))
}

func TestBaseError_WrapMessageIsUnwrappable(t *testing.T) {
	wrapped := ErrProductNotFound.WrapMessage("update product p-1")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Product not found", appErr.Message())
	assert.True(t, errors.Is(wrapped, ErrProductNotFound))
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewDatabaseExecuteError(cause, "failed to list products")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Internal server error", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}
