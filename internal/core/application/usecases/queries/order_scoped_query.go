package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
	ErrGetDeliveryStatusQueryIsNotConstructed = errors.New(
		"GetDeliveryStatusQuery must be created via NewGetDeliveryStatusQuery constructor",
	)
	ErrListLineItemsQueryIsNotConstructed = errors.New(
		"ListLineItemsQuery must be created via NewListLineItemsQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// orderScoped is the common body of the queries addressed to a single order.
type orderScoped struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderScoped(orderID kernel.UUID) (orderScoped, error) {
	if err := orderID.Validate(); err != nil {
		return orderScoped{}, err
	}
	return orderScoped{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q orderScoped) OrderID() kernel.UUID {
	return q.orderID
}

// ListDeliveriesQuery lists the deliveries of an order, oldest first.
type ListDeliveriesQuery struct{ orderScoped }

func NewListDeliveriesQuery(orderID kernel.UUID) (ListDeliveriesQuery, error) {
	q, err := newOrderScoped(orderID)
	return ListDeliveriesQuery{q}, err
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// GetDeliveryStatusQuery reads the raw status of an order's latest delivery.
type GetDeliveryStatusQuery struct{ orderScoped }

func NewGetDeliveryStatusQuery(orderID kernel.UUID) (GetDeliveryStatusQuery, error) {
	q, err := newOrderScoped(orderID)
	return GetDeliveryStatusQuery{q}, err
}

func (q GetDeliveryStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusQueryIsNotConstructed)
}

// ListLineItemsQuery lists the line items of an order by product name.
type ListLineItemsQuery struct{ orderScoped }

func NewListLineItemsQuery(orderID kernel.UUID) (ListLineItemsQuery, error) {
	q, err := newOrderScoped(orderID)
	return ListLineItemsQuery{q}, err
}

func (q ListLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrListLineItemsQueryIsNotConstructed)
}

// GetOrderQuery reads the current snapshot of an order.
type GetOrderQuery struct{ orderScoped }

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q, err := newOrderScoped(orderID)
	return GetOrderQuery{q}, err
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
