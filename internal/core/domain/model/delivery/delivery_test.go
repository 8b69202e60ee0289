package delivery_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should start as pending", func(t *testing.T) {
		id, orderID, carrierID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

		d, err := delivery.NewDelivery(id, orderID, carrierID, at)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, id, d.ID())
		assert.Equal(t, orderID, d.OrderID())
		assert.Equal(t, carrierID, d.CarrierID())
		assert.True(t, at.Equal(d.CreatedAt()))
		assert.Equal(t, time.UTC, d.CreatedAt().Location())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.UUID{}, kernel.NewUUID(), kernel.UUID{}, time.Time{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, delivery.ErrCreatedAtIsRequired)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should accept statuses outside the known set", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Returned", time.Now())

		require.NoError(t, err)
		assert.Equal(t, delivery.Status("Returned"), d.Status())
	})

	t.Run("should reject empty status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), " ", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDelivery_Validate(t *testing.T) {
	var nilDelivery *delivery.Delivery

	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, nilDelivery.Validate())
	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, (&delivery.Delivery{}).Validate())
}

func TestLatest(t *testing.T) {
	orderID := kernel.NewUUID()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(at time.Time) *delivery.Delivery {
		d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(), at)
		require.NoError(t, err)
		return d
	}

	t.Run("should return nil for empty list", func(t *testing.T) {
		assert.Nil(t, delivery.Latest(nil))
	})

	t.Run("should pick most recent creation", func(t *testing.T) {
		older, newest, middle := mk(base), mk(base.Add(2*time.Hour)), mk(base.Add(time.Hour))

		assert.Same(t, newest, delivery.Latest([]*delivery.Delivery{older, newest, middle}))
	})

	t.Run("should keep first on equal timestamps", func(t *testing.T) {
		first, second := mk(base), mk(base)

		assert.Same(t, first, delivery.Latest([]*delivery.Delivery{first, nil, second}))
	})
}
