package http

import (
	"time"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
)

type Error struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	State    string `json:"state,omitempty"`
}

type CarrierChoice struct {
	CarrierID string `json:"carrierId"`
}

type Offer struct {
	CarrierID   string  `json:"carrierId"`
	CarrierName string  `json:"carrierName,omitempty"`
	Price       *string `json:"price"`
	TransitDays *int    `json:"transitDays"`
	Destination string  `json:"destination"`
	Complete    bool    `json:"complete"`
}

type Delivery struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	CarrierID string    `json:"carrierId"`
	Status    string    `json:"status"`
	Badge     string    `json:"badge"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeliveryStatus struct {
	Status string `json:"status"`
	Badge  string `json:"badge"`
}

type LineItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"orderId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    *int    `json:"quantity"`
	UnitPrice   *string `json:"unitPrice"`
	TotalPrice  string  `json:"totalPrice"`
	StockOnHand *int    `json:"stockOnHand"`
}

type Eligibility struct {
	State     string `json:"state"`
	MayLaunch bool   `json:"mayLaunch"`
	Reason    string `json:"reason"`
}

type Fulfillment struct {
	OrderID             string      `json:"orderId"`
	OrderStatus         string      `json:"orderStatus"`
	OrderStatusTone     string      `json:"orderStatusTone"`
	Destination         string      `json:"destination"`
	DestinationResolved bool        `json:"destinationResolved"`
	Offers              []Offer     `json:"offers"`
	SelectedCarrierID   *string     `json:"selectedCarrierId"`
	CheapestCarrierID   *string     `json:"cheapestCarrierId"`
	FastestCarrierID    *string     `json:"fastestCarrierId"`
	Eligibility         Eligibility `json:"eligibility"`
	InFlight            bool        `json:"inFlight"`
	Deliveries          []Delivery  `json:"deliveries"`
	DeliveryStatus      string      `json:"deliveryStatus"`
	Badge               string      `json:"badge"`
	LineItems           []LineItem  `json:"lineItems"`
	Oversold            bool        `json:"oversold"`
}

type Launch struct {
	Delivery     Delivery `json:"delivery"`
	RefreshError string   `json:"refreshError,omitempty"`
}

func toOffer(o carrier.Offer) Offer {
	out := Offer{
		CarrierID:   o.CarrierID().String(),
		CarrierName: o.Name(),
		Destination: o.Destination().String(),
		Complete:    o.IsComplete(),
	}
	if price, ok := o.Price(); ok {
		s := price.StringFixed(2)
		out.Price = &s
	}
	if days, ok := o.TransitDays(); ok {
		out.TransitDays = &days
	}
	return out
}

func toOffers(offers []carrier.Offer) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOffer(o))
	}
	return out
}

func toDelivery(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:        d.ID().String(),
		OrderID:   d.OrderID().String(),
		CarrierID: d.CarrierID().String(),
		Status:    d.Status().String(),
		Badge:     delivery.BadgeFor(d.Status().String()).String(),
		CreatedAt: d.CreatedAt(),
	}
}

func toDeliveries(deliveries []*delivery.Delivery) []Delivery {
	out := make([]Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, toDelivery(d))
	}
	return out
}

func toLineItem(li *lineitem.LineItem) LineItem {
	out := LineItem{
		ID:          li.ID().String(),
		OrderID:     li.OrderID().String(),
		ProductID:   li.ProductID().String(),
		ProductName: li.ProductName(),
		TotalPrice:  li.TotalPrice().StringFixed(2),
	}
	if qty, ok := li.Quantity(); ok {
		out.Quantity = &qty
	}
	if price, ok := li.UnitPrice(); ok {
		s := price.StringFixed(2)
		out.UnitPrice = &s
	}
	if stock, ok := li.StockOnHand(); ok {
		out.StockOnHand = &stock
	}
	return out
}

func toLineItems(items []*lineitem.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		out = append(out, toLineItem(li))
	}
	return out
}

func carrierRef(o carrier.Offer) *string {
	if o.IsZero() {
		return nil
	}
	id := o.CarrierID().String()
	return &id
}

func toFulfillment(v fulfillment.View) Fulfillment {
	out := Fulfillment{
		OrderID:             v.OrderID.String(),
		Destination:         v.Destination.String(),
		DestinationResolved: v.DestinationResolved,
		Offers:              toOffers(v.Offers),
		SelectedCarrierID:   carrierRef(v.Selection),
		CheapestCarrierID:   carrierRef(v.Cheapest),
		FastestCarrierID:    carrierRef(v.Fastest),
		Eligibility: Eligibility{
			State:     v.Eligibility.State.String(),
			MayLaunch: v.Eligibility.MayLaunch(),
			Reason:    v.Eligibility.Reason(),
		},
		InFlight:       v.InFlight,
		Deliveries:     toDeliveries(v.Deliveries),
		DeliveryStatus: v.DeliveryStatus,
		Badge:          v.Badge.String(),
		LineItems:      toLineItems(v.LineItems),
		Oversold:       v.Oversold,
	}
	if v.HasOrder {
		out.OrderStatus = v.OrderStatus.String()
		out.OrderStatusTone = string(v.OrderStatus.Tone())
	}
	return out
}

func parseCarrierChoice(body CarrierChoice) (kernel.UUID, error) {
	return kernel.UUIDFromString(body.CarrierID)
}
