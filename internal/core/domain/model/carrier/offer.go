package carrier

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("carrierName")
	ErrPriceIsRequired       = errs.NewValueIsRequiredError("price")
	ErrTransitDaysIsRequired = errs.NewValueIsRequiredError("transitDays")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// Offer is one carrier's price and transit time for a destination.
//
// Name, price and transit time are optional on restored offers because the
// lookup source does not enforce them. Use IsComplete before ranking.
type Offer struct {
	carrierID   kernel.UUID
	name        string
	price       decimal.NullDecimal
	transitDays *int
	destination kernel.Country
}

// NewOffer builds a complete offer. Every field is mandatory.
func NewOffer(
	carrierID kernel.UUID,
	name string,
	price decimal.Decimal,
	transitDays int,
	destination kernel.Country,
) (Offer, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(
		carrierID.Validate(),
		nameErr,
		validatePrice(decimal.NewNullDecimal(price)),
		validateTransitDays(&transitDays),
		validateDestination(destination),
	); err != nil {
		return Offer{}, err
	}

	return Offer{
		carrierID:   carrierID,
		name:        strings.TrimSpace(name),
		price:       decimal.NewNullDecimal(price),
		transitDays: &transitDays,
		destination: destination,
	}, nil
}

// RestoreOffer rebuilds an offer as stored. Missing name, price or transit time
// are accepted and make the offer incomplete; negative values are still rejected.
func RestoreOffer(
	carrierID kernel.UUID,
	name string,
	price decimal.NullDecimal,
	transitDays *int,
	destination kernel.Country,
) (Offer, error) {
	if err := errors.Join(
		carrierID.Validate(),
		validatePrice(price),
		validateTransitDays(transitDays),
		validateDestination(destination),
	); err != nil {
		return Offer{}, err
	}

	var days *int
	if transitDays != nil {
		d := *transitDays
		days = &d
	}

	return Offer{
		carrierID:   carrierID,
		name:        strings.TrimSpace(name),
		price:       price,
		transitDays: days,
		destination: destination,
	}, nil
}

func validatePrice(price decimal.NullDecimal) error {
	if price.Valid && price.Decimal.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.Decimal.String(), 0, "unbounded")
	}
	return nil
}

func validateTransitDays(days *int) error {
	if days != nil && *days < 0 {
		return errs.NewValueIsOutOfRangeError("transitDays", *days, 0, "unbounded")
	}
	return nil
}

func validateDestination(destination kernel.Country) error {
	if destination.IsZero() {
		return ErrDestinationIsRequired
	}
	return nil
}

func (o Offer) CarrierID() kernel.UUID {
	return o.carrierID
}

// Name returns the display name, "" when the lookup returned none.
func (o Offer) Name() string {
	return o.name
}

// Price returns the price and whether it is known.
func (o Offer) Price() (decimal.Decimal, bool) {
	return o.price.Decimal, o.price.Valid
}

// TransitDays returns the transit period in days and whether it is known.
func (o Offer) TransitDays() (int, bool) {
	if o.transitDays == nil {
		return 0, false
	}
	return *o.transitDays, true
}

func (o Offer) Destination() kernel.Country {
	return o.destination
}

// IsComplete reports whether the offer carries a name, a price and a transit time.
// The zero Offer is never complete.
func (o Offer) IsComplete() bool {
	return !o.carrierID.IsZero() && o.name != "" && o.price.Valid && o.transitDays != nil
}

// IsZero reports whether o is the "no offer" value.
func (o Offer) IsZero() bool {
	return o.carrierID.IsZero()
}
