package services

import (
	"fulfillment/internal/core/domain/model/carrier"
)

// CarrierRanker ranks carrier offers for one destination.
//
// Business rules:
//   - Incomplete offers (missing name, price or transit time) are dropped before ranking
//   - Cheapest orders by price, then transit time, then input order
//   - Fastest orders by transit time, then price, then input order
//   - The default selection is the cheapest offer
//
// Every method returns false instead of an error when nothing can be ranked.
//
// Example usage:
//
//	ranker := CarrierRanker{}
//	if offer, ok := ranker.DefaultSelection(offers); ok {
//	    selected = offer.CarrierID()
//	}
type CarrierRanker struct{}

func NewCarrierRanker() CarrierRanker {
	return CarrierRanker{}
}

// Cheapest returns the complete offer with the lowest price.
func (CarrierRanker) Cheapest(offers []carrier.Offer) (carrier.Offer, bool) {
	return best(offers, cheaper)
}

// Fastest returns the complete offer with the shortest transit time.
func (CarrierRanker) Fastest(offers []carrier.Offer) (carrier.Offer, bool) {
	return best(offers, faster)
}

// DefaultSelection is the offer pre-selected when a destination is loaded.
func (r CarrierRanker) DefaultSelection(offers []carrier.Offer) (carrier.Offer, bool) {
	return r.Cheapest(offers)
}

// best keeps the first complete offer that no later offer strictly beats.
func best(offers []carrier.Offer, less func(a, b carrier.Offer) bool) (carrier.Offer, bool) {
	var (
		winner carrier.Offer
		found  bool
	)
	for _, offer := range offers {
		if !offer.IsComplete() {
			continue
		}
		if !found || less(offer, winner) {
			winner, found = offer, true
		}
	}
	return winner, found
}

func cheaper(a, b carrier.Offer) bool {
	pa, _ := a.Price()
	pb, _ := b.Price()
	if c := pa.Cmp(pb); c != 0 {
		return c < 0
	}
	da, _ := a.TransitDays()
	db, _ := b.TransitDays()
	return da < db
}

func faster(a, b carrier.Offer) bool {
	da, _ := a.TransitDays()
	db, _ := b.TransitDays()
	if da != db {
		return da < db
	}
	pa, _ := a.Price()
	pb, _ := b.Price()
	return pa.LessThan(pb)
}
