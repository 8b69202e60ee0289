package fulfillment_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct{ mock.Mock }

func (m *MockGateway) LookupCarrierOffers(ctx context.Context, destination kernel.Country) ([]carrier.Offer, error) {
	args := m.Called(ctx, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]carrier.Offer), args.Error(1)
}

func (m *MockGateway) CreateDelivery(ctx context.Context, orderID, carrierID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockGateway) ListDeliveries(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockGateway) AggregateDeliveryStatus(ctx context.Context, orderID kernel.UUID) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) ListLineItems(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lineitem.LineItem), args.Error(1)
}

func (m *MockGateway) DeleteLineItem(ctx context.Context, lineItemID kernel.UUID) error {
	args := m.Called(ctx, lineItemID)
	return args.Error(0)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

var (
	france  = kernel.MustNewCountry("FR")
	germany = kernel.MustNewCountry("DE")
)

func newOrder(t *testing.T, id kernel.UUID, destination kernel.Country, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, destination, status)
	require.NoError(t, err)
	return o
}

func newOffer(t *testing.T, name string, price int64, days int, destination kernel.Country) carrier.Offer {
	t.Helper()
	o, err := carrier.NewOffer(kernel.NewUUID(), name, decimal.NewFromInt(price), days, destination)
	require.NoError(t, err)
	return o
}

func newDelivery(t *testing.T, orderID, carrierID kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, carrierID, status, time.Now())
	require.NoError(t, err)
	return d
}

func newLineItem(t *testing.T, orderID, productID kernel.UUID, qty, stock int) *lineitem.LineItem {
	t.Helper()
	li, err := lineitem.RestoreLineItem(kernel.NewUUID(), orderID, productID, "Widget", &qty,
		decimal.NewNullDecimal(decimal.NewFromInt(5)), &stock)
	require.NoError(t, err)
	return li
}
