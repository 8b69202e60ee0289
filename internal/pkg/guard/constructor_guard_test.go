package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("quote not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	errQuoteNotConstructed := errors.New("quote must be created via newQuote")

	type quote struct {
		carrier string
		guard   guard.ConstructorGuard
	}

	newQuote := func(carrier string) (quote, error) {
		if carrier == "" {
			return quote{}, errors.New("carrier is required")
		}
		return quote{carrier: carrier, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		q, err := newQuote("DHL")

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuoteNotConstructed))
		assert.Equal(t, "DHL", q.carrier)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		q := quote{carrier: "DHL"}

		assert.Equal(t, errQuoteNotConstructed, q.guard.Validate(errQuoteNotConstructed))
	})
}
