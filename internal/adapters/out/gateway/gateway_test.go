package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/gateway"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.FulfillmentGateway = (*gateway.LocalGateway)(nil)
	_ ports.OrderSource        = (*gateway.LocalGateway)(nil)
)

type lookupFunc func(context.Context, queries.LookupCarrierOffersQuery) ([]carrier.Offer, error)

func (f lookupFunc) Handle(ctx context.Context, q queries.LookupCarrierOffersQuery) ([]carrier.Offer, error) {
	return f(ctx, q)
}

type createFunc func(context.Context, commands.CreateDeliveryCommand) (*delivery.Delivery, error)

func (f createFunc) Handle(ctx context.Context, c commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
	return f(ctx, c)
}

type listDeliveriesFunc func(context.Context, queries.ListDeliveriesQuery) ([]*delivery.Delivery, error)

func (f listDeliveriesFunc) Handle(ctx context.Context, q queries.ListDeliveriesQuery) ([]*delivery.Delivery, error) {
	return f(ctx, q)
}

type statusFunc func(context.Context, queries.GetDeliveryStatusQuery) (string, error)

func (f statusFunc) Handle(ctx context.Context, q queries.GetDeliveryStatusQuery) (string, error) {
	return f(ctx, q)
}

type listItemsFunc func(context.Context, queries.ListLineItemsQuery) ([]*lineitem.LineItem, error)

func (f listItemsFunc) Handle(ctx context.Context, q queries.ListLineItemsQuery) ([]*lineitem.LineItem, error) {
	return f(ctx, q)
}

type deleteFunc func(context.Context, commands.DeleteLineItemCommand) error

func (f deleteFunc) Handle(ctx context.Context, c commands.DeleteLineItemCommand) error {
	return f(ctx, c)
}

type orderFunc func(context.Context, queries.GetOrderQuery) (*order.Order, error)

func (f orderFunc) Handle(ctx context.Context, q queries.GetOrderQuery) (*order.Order, error) {
	return f(ctx, q)
}

func TestLocalGateway_BuildsCommandsAndQueries(t *testing.T) {
	ctx := t.Context()
	france := kernel.MustNewCountry("FR")
	orderID, carrierID, itemID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	offer, err := carrier.NewOffer(carrierID, "X", decimal.NewFromInt(10), 2, france)
	require.NoError(t, err)
	created, err := delivery.NewDelivery(kernel.NewUUID(), orderID, carrierID, time.Now())
	require.NoError(t, err)
	snapshot, err := order.RestoreOrder(orderID, france, order.Activated)
	require.NoError(t, err)

	var deleted kernel.UUID
	g := gateway.NewLocalGateway(gateway.Handlers{
		LookupCarrierOffers: lookupFunc(func(_ context.Context, q queries.LookupCarrierOffersQuery) ([]carrier.Offer, error) {
			assert.Equal(t, france, q.Destination())
			return []carrier.Offer{offer}, nil
		}),
		CreateDelivery: createFunc(func(_ context.Context, c commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
			assert.Equal(t, orderID, c.OrderID())
			assert.Equal(t, carrierID, c.CarrierID())
			return created, nil
		}),
		ListDeliveries: listDeliveriesFunc(func(_ context.Context, q queries.ListDeliveriesQuery) ([]*delivery.Delivery, error) {
			assert.Equal(t, orderID, q.OrderID())
			return []*delivery.Delivery{created}, nil
		}),
		GetDeliveryStatus: statusFunc(func(_ context.Context, q queries.GetDeliveryStatusQuery) (string, error) {
			assert.Equal(t, orderID, q.OrderID())
			return "Pending", nil
		}),
		ListLineItems: listItemsFunc(func(_ context.Context, q queries.ListLineItemsQuery) ([]*lineitem.LineItem, error) {
			assert.Equal(t, orderID, q.OrderID())
			return nil, nil
		}),
		DeleteLineItem: deleteFunc(func(_ context.Context, c commands.DeleteLineItemCommand) error {
			deleted = c.LineItemID()
			return nil
		}),
		GetOrder: orderFunc(func(_ context.Context, q queries.GetOrderQuery) (*order.Order, error) {
			assert.Equal(t, orderID, q.OrderID())
			return snapshot, nil
		}),
	})

	offers, err := g.LookupCarrierOffers(ctx, france)
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	d, err := g.CreateDelivery(ctx, orderID, carrierID)
	require.NoError(t, err)
	assert.Same(t, created, d)

	deliveries, err := g.ListDeliveries(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)

	status, err := g.AggregateDeliveryStatus(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", status)

	items, err := g.ListLineItems(ctx, orderID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, g.DeleteLineItem(ctx, itemID))
	assert.Equal(t, itemID, deleted)

	got, err := g.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Same(t, snapshot, got)
}

func TestLocalGateway_InvalidArgumentsNeverReachHandlers(t *testing.T) {
	ctx := t.Context()
	g := gateway.NewLocalGateway(gateway.Handlers{})

	_, err := g.LookupCarrierOffers(ctx, kernel.Country{})
	require.ErrorIs(t, err, kernel.ErrCountryIsRequired)
	_, err = g.CreateDelivery(ctx, kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = g.ListDeliveries(ctx, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = g.AggregateDeliveryStatus(ctx, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = g.ListLineItems(ctx, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, g.DeleteLineItem(ctx, kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
	_, err = g.GetOrder(ctx, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestLocalGateway_PassesHandlerErrorsThrough(t *testing.T) {
	boom := errors.New("db down")
	g := gateway.NewLocalGateway(gateway.Handlers{
		CreateDelivery: createFunc(func(context.Context, commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
			return nil, boom
		}),
	})

	_, err := g.CreateDelivery(t.Context(), kernel.NewUUID(), kernel.NewUUID())

	require.ErrorIs(t, err, boom)
}
