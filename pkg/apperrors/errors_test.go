package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := OutOfStock("product %d: requested %d", 3, 5)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Contains(t, err.Error(), "product 3: requested 5")

	// Another layer of wrapping keeps the kind reachable.
	wrapped := fmt.Errorf("placing order: %w", err)
	assert.ErrorIs(t, wrapped, ErrOutOfStock)
}

func TestKindsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(Conflict("delivery claimed"), ErrValidation))
	assert.False(t, errors.Is(NotFound("order 7"), ErrConflict))
	assert.False(t, errors.Is(Unauthorized("not yours"), ErrNotFound))
	assert.False(t, errors.Is(InsufficientBalance("10 < 50"), ErrOutOfStock))
}
