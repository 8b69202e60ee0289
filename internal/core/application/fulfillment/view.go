package fulfillment

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// View is a consistent snapshot of an orchestrator for the presentation layer.
// Slices are copies; the values they hold are immutable.
type View struct {
	OrderID     kernel.UUID
	OrderStatus order.Status
	HasOrder    bool

	Destination         kernel.Country
	DestinationResolved bool
	Offers              []carrier.Offer
	// Selection is the zero Offer when no carrier is selected.
	Selection carrier.Offer
	Cheapest  carrier.Offer
	Fastest   carrier.Offer

	Eligibility services.Eligibility
	InFlight    bool

	Deliveries     []*delivery.Delivery
	DeliveryStatus string
	Badge          delivery.Badge

	LineItems []*lineitem.LineItem
	Oversold  bool
}

func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := View{
		OrderID:             o.orderID,
		HasOrder:            o.order != nil,
		Destination:         o.destination,
		DestinationResolved: o.destinationResolved,
		Offers:              append([]carrier.Offer(nil), o.offers...),
		Eligibility:         o.evaluateLocked(),
		InFlight:            o.inFlight,
		Deliveries:          append([]*delivery.Delivery(nil), o.deliveries...),
		DeliveryStatus:      o.deliveryStatus,
		Badge:               delivery.BadgeFor(o.deliveryStatus),
		LineItems:           append([]*lineitem.LineItem(nil), o.lineItems...),
		Oversold:            o.oversold,
	}
	if o.order != nil {
		v.OrderStatus = o.order.Status()
	}
	v.Selection, _ = o.selectableLocked(o.selection)
	v.Cheapest, _ = o.ranker.Cheapest(o.offers)
	v.Fastest, _ = o.ranker.Fastest(o.offers)
	return v
}
