package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCarrierOfferRepository struct{ mock.Mock }

func (m *MockCarrierOfferRepository) Add(ctx context.Context, offer carrier.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockCarrierOfferRepository) ListByDestination(ctx context.Context, to kernel.Country) ([]carrier.Offer, error) {
	args := m.Called(ctx, to)
	offers, _ := args.Get(0).([]carrier.Offer)
	return offers, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	deliveries, _ := args.Get(0).([]*delivery.Delivery)
	return deliveries, args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, item *lineitem.LineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockLineItemRepository) Get(ctx context.Context, id kernel.UUID) (*lineitem.LineItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*lineitem.LineItem)
	return item, args.Error(1)
}

func (m *MockLineItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLineItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]*lineitem.LineItem)
	return items, args.Error(1)
}

// MockUoW serves both DeliveryUoW and LineItemUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CarrierOfferRepository() ports.CarrierOfferRepository {
	return m.Called().Get(0).(ports.CarrierOfferRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) LineItemRepository() ports.LineItemRepository {
	return m.Called().Get(0).(ports.LineItemRepository)
}

type deliveryUoWFactory struct{ uow *MockUoW }

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

type lineItemUoWFactory struct{ uow *MockUoW }

func (f lineItemUoWFactory) Create() commands.LineItemUoW { return f.uow }
