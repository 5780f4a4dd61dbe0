package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Run("malformed row is an io error", func(t *testing.T) {
		assert.True(t, errors.Is(ErrMalformedRow, ErrIO))
		assert.False(t, errors.Is(ErrMalformedRow, ErrQuery))
	})

	t.Run("kinds survive wrapping", func(t *testing.T) {
		err := fmt.Errorf("insert contact: %w", fmt.Errorf("%w: duplicate key", ErrQuery))
		assert.True(t, errors.Is(err, ErrQuery))
		assert.False(t, errors.Is(err, ErrConnection))
	})
}

