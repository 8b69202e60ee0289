package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrLookupCarrierOffersQueryIsNotConstructed = errors.New(
	"LookupCarrierOffersQuery must be created via NewLookupCarrierOffersQuery constructor",
)

// LookupCarrierOffersQuery lists the offers of every carrier serving a country.
//
// Example:
//
//	query, err := NewLookupCarrierOffersQuery(kernel.MustNewCountry("FR"))
//	if err != nil {
//	    return err
//	}
//	offers, err := handler.Handle(ctx, query)
type LookupCarrierOffersQuery struct {
	destination kernel.Country
	guard       guard.ConstructorGuard
}

func NewLookupCarrierOffersQuery(destination kernel.Country) (LookupCarrierOffersQuery, error) {
	if destination.IsZero() {
		return LookupCarrierOffersQuery{}, kernel.ErrCountryIsRequired
	}
	return LookupCarrierOffersQuery{destination: destination, guard: guard.NewConstructorGuard()}, nil
}

func (q LookupCarrierOffersQuery) Validate() error {
	return q.guard.Validate(ErrLookupCarrierOffersQueryIsNotConstructed)
}

func (q LookupCarrierOffersQuery) Destination() kernel.Country {
	return q.destination
}
