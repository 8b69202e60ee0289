// Package gateway serves the fulfillment ports from the service's own command
// and query handlers, so the orchestrator runs in-process against PostgreSQL.
package gateway

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
)

type (
	offerLookup interface {
		Handle(ctx context.Context, query queries.LookupCarrierOffersQuery) ([]carrier.Offer, error)
	}
	deliveryCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) (*delivery.Delivery, error)
	}
	deliveryLister interface {
		Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]*delivery.Delivery, error)
	}
	deliveryStatusReader interface {
		Handle(ctx context.Context, query queries.GetDeliveryStatusQuery) (string, error)
	}
	lineItemLister interface {
		Handle(ctx context.Context, query queries.ListLineItemsQuery) ([]*lineitem.LineItem, error)
	}
	lineItemDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteLineItemCommand) error
	}
	orderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
)

// Handlers groups the use cases LocalGateway delegates to.
type Handlers struct {
	LookupCarrierOffers offerLookup
	CreateDelivery      deliveryCreator
	ListDeliveries      deliveryLister
	GetDeliveryStatus   deliveryStatusReader
	ListLineItems       lineItemLister
	DeleteLineItem      lineItemDeleter
	GetOrder            orderReader
}

// LocalGateway implements ports.FulfillmentGateway and ports.OrderSource.
type LocalGateway struct {
	h Handlers
}

func NewLocalGateway(h Handlers) *LocalGateway {
	return &LocalGateway{h: h}
}

func (g *LocalGateway) LookupCarrierOffers(ctx context.Context, destination kernel.Country) ([]carrier.Offer, error) {
	query, err := queries.NewLookupCarrierOffersQuery(destination)
	if err != nil {
		return nil, err
	}
	return g.h.LookupCarrierOffers.Handle(ctx, query)
}

func (g *LocalGateway) CreateDelivery(ctx context.Context, orderID, carrierID kernel.UUID) (*delivery.Delivery, error) {
	cmd, err := commands.NewCreateDeliveryCommand(orderID, carrierID)
	if err != nil {
		return nil, err
	}
	return g.h.CreateDelivery.Handle(ctx, cmd)
}

func (g *LocalGateway) ListDeliveries(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	query, err := queries.NewListDeliveriesQuery(orderID)
	if err != nil {
		return nil, err
	}
	return g.h.ListDeliveries.Handle(ctx, query)
}

func (g *LocalGateway) AggregateDeliveryStatus(ctx context.Context, orderID kernel.UUID) (string, error) {
	query, err := queries.NewGetDeliveryStatusQuery(orderID)
	if err != nil {
		return "", err
	}
	return g.h.GetDeliveryStatus.Handle(ctx, query)
}

func (g *LocalGateway) ListLineItems(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error) {
	query, err := queries.NewListLineItemsQuery(orderID)
	if err != nil {
		return nil, err
	}
	return g.h.ListLineItems.Handle(ctx, query)
}

func (g *LocalGateway) DeleteLineItem(ctx context.Context, lineItemID kernel.UUID) error {
	cmd, err := commands.NewDeleteLineItemCommand(lineItemID)
	if err != nil {
		return err
	}
	return g.h.DeleteLineItem.Handle(ctx, cmd)
}

func (g *LocalGateway) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}
	return g.h.GetOrder.Handle(ctx, query)
}
