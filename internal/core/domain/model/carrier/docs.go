// Package carrier holds the carrier offer value: a priced, timed shipping option
// for one destination country.
//
// Offers come back from the carrier lookup as immutable snapshots. A snapshot may
// be incomplete (no display name, no price or no transit time); incomplete offers
// are kept as values so callers can count and show them, but they never take part
// in ranking or selection.
//
// Example:
//
//	offer, err := carrier.NewOffer(carrierID, "DHL", decimal.NewFromInt(8), 5, kernel.MustNewCountry("FR"))
//	if err != nil {
//	    return err
//	}
//	offer.IsComplete() // true
package carrier
