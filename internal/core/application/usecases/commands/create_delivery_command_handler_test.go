package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	france = kernel.MustNewCountry("FR")
	fixed  = time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)
)

type createDeliveryFixture struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	offers    *MockCarrierOfferRepository
	delivers  *MockDeliveryRepository
	handler   commands.CreateDeliveryCommandHandler
	order     *order.Order
	carrierID kernel.UUID
}

func newCreateDeliveryFixture(t *testing.T, status order.Status, destination kernel.Country) *createDeliveryFixture {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), destination, status)
	require.NoError(t, err)

	f := &createDeliveryFixture{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		offers:    new(MockCarrierOfferRepository),
		delivers:  new(MockDeliveryRepository),
		order:     o,
		carrierID: kernel.NewUUID(),
	}
	f.handler = commands.NewCreateDeliveryCommandHandler(deliveryUoWFactory{uow: f.uow}, func() time.Time { return fixed })
	return f
}

func (f *createDeliveryFixture) command(t *testing.T) commands.CreateDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewCreateDeliveryCommand(f.order.ID(), f.carrierID)
	require.NoError(t, err)
	return cmd
}

func completeOffer(t *testing.T, carrierID kernel.UUID) carrier.Offer {
	t.Helper()
	offer, err := carrier.NewOffer(carrierID, "X", decimal.NewFromInt(10), 3, france)
	require.NoError(t, err)
	return offer
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateDeliveryFixture(t, order.Activated, france)
	offers := []carrier.Offer{completeOffer(t, kernel.NewUUID()), completeOffer(t, f.carrierID)}

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.uow.On("CarrierOfferRepository").Return(f.offers).Once(),
		f.offers.On("ListByDestination", ctx, france).Return(offers, nil).Once(),
		f.uow.On("DeliveryRepository").Return(f.delivers).Once(),
		f.delivers.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	d, err := f.handler.Handle(ctx, f.command(t))

	require.NoError(t, err)
	assert.True(t, d.OrderID().IsEqual(f.order.ID()))
	assert.True(t, d.CarrierID().IsEqual(f.carrierID))
	assert.Equal(t, delivery.Pending, d.Status())
	assert.True(t, d.CreatedAt().Equal(fixed))
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.offers.AssertExpectations(t)
	f.delivers.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_RefusesWithoutWriting(t *testing.T) {
	incomplete, err := carrier.RestoreOffer(kernel.NewUUID(), "", decimal.NullDecimal{}, nil, france)
	require.NoError(t, err)

	tests := []struct {
		name    string
		status  order.Status
		to      kernel.Country
		offers  func(f *createDeliveryFixture) []carrier.Offer
		listed  bool
		wantErr error
	}{
		{
			name:    "draft order",
			status:  order.Draft,
			to:      france,
			wantErr: services.ErrOrderNotActivated,
		},
		{
			name:    "no destination",
			status:  order.Activated,
			wantErr: commands.ErrOrderHasNoDestination,
		},
		{
			name:   "only incomplete offers",
			status: order.Activated,
			to:     france,
			offers: func(f *createDeliveryFixture) []carrier.Offer {
				return []carrier.Offer{incomplete}
			},
			listed:  true,
			wantErr: services.ErrNoCarriersForDestination,
		},
		{
			name:   "carrier not among the offers",
			status: order.Activated,
			to:     france,
			offers: func(f *createDeliveryFixture) []carrier.Offer {
				return []carrier.Offer{completeOffer(t, kernel.NewUUID())}
			},
			listed:  true,
			wantErr: commands.ErrCarrierNotOffered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newCreateDeliveryFixture(t, tt.status, tt.to)

			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("OrderRepository").Return(f.orders).Once()
			f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
			if tt.listed {
				f.uow.On("CarrierOfferRepository").Return(f.offers).Once()
				f.offers.On("ListByDestination", ctx, tt.to).Return(tt.offers(f), nil).Once()
			}
			f.uow.On("Rollback", ctx).Return(nil).Once()

			d, err := f.handler.Handle(ctx, f.command(t))

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, d)
			f.uow.AssertNotCalled(t, "DeliveryRepository")
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
			f.uow.AssertExpectations(t)
		})
	}
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCreateDeliveryFixture(t, order.Activated, france)

	_, err := f.handler.Handle(t.Context(), commands.CreateDeliveryCommand{})

	require.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateDeliveryFixture(t, order.Activated, france)
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := f.handler.Handle(ctx, f.command(t))

	require.EqualError(t, err, "begin error")
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newCreateDeliveryFixture(t, order.Activated, france)
	addErr := errors.New("insert failed")

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.uow.On("CarrierOfferRepository").Return(f.offers).Once(),
		f.offers.On("ListByDestination", ctx, france).Return([]carrier.Offer{completeOffer(t, f.carrierID)}, nil).Once(),
		f.uow.On("DeliveryRepository").Return(f.delivers).Once(),
		f.delivers.On("Add", ctx, mock.Anything).Return(addErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.command(t))

	require.ErrorIs(t, err, addErr)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_OrderLookupError(t *testing.T) {
	ctx := t.Context()
	f := newCreateDeliveryFixture(t, order.Activated, france)
	getErr := errors.New("connection reset")

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("Get", ctx, f.order.ID()).Return(nil, getErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, f.command(t))

	require.ErrorIs(t, err, getErr)
	f.uow.AssertExpectations(t)
}
