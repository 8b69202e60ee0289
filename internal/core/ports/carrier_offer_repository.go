package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CarrierOfferRepository stores the offer catalogue per destination country.
type CarrierOfferRepository interface {
	Add(ctx context.Context, offer carrier.Offer) error

	// ListByDestination returns every offer for the country, complete or not,
	// in insertion order.
	ListByDestination(ctx context.Context, destination kernel.Country) ([]carrier.Offer, error)
}
