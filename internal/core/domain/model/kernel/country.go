package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"golang.org/x/text/language"
)

var ErrCountryIsRequired = errs.NewValueIsRequiredError("country")

// Country is an ISO 3166-1 destination country, stored in its alpha-2 form.
// Carrier offers are priced per Country, so two orders with equal Country values
// share the same offer set.
type Country struct {
	code string
}

// NewCountry accepts alpha-2, alpha-3 or numeric region codes in any case and
// normalizes them to upper-case alpha-2. Regions that are not countries
// (continents, "001" for the world, ...) are rejected.
func NewCountry(raw string) (Country, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Country{}, ErrCountryIsRequired
	}

	region, err := language.ParseRegion(raw)
	if err != nil {
		return Country{}, errs.NewValueIsInvalidErrorWithCause("country", err)
	}
	if !region.IsCountry() {
		return Country{}, errs.NewValueIsInvalidErrorWithCause(
			"country",
			fmt.Errorf("%q is not a country code", raw),
		)
	}

	return Country{code: region.String()}, nil
}

// MustNewCountry panics when raw is not a valid country. Meant for fixtures.
func MustNewCountry(raw string) Country {
	c, err := NewCountry(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the alpha-2 code, or "" for the zero Country.
func (c Country) String() string {
	return c.code
}

// IsZero reports whether no destination is set.
func (c Country) IsZero() bool {
	return c.code == ""
}

func (c Country) IsEqual(other Country) bool {
	return c.code == other.code
}

func (c Country) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}
