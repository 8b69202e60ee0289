package delivery

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the raw delivery status as recorded by the carrier system.
type Status string

const (
	Pending   Status = "Pending"
	Confirmed Status = "Confirmed"
	InTransit Status = "InTransit"
	Delivered Status = "Delivered"
	Cancelled Status = "Cancelled"
)

func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// Badge is the coarse status category shown for an order's deliveries.
type Badge string

const (
	BadgeDelivered Badge = "Delivered"
	BadgeInTransit Badge = "InTransit"
	BadgeConfirmed Badge = "Confirmed"
	BadgePending   Badge = "Pending"
	BadgeCancelled Badge = "Cancelled"
	BadgeUnknown   Badge = "Unknown"
)

var badgesByKey = map[string]Badge{
	"delivered": BadgeDelivered,
	"intransit": BadgeInTransit,
	"confirmed": BadgeConfirmed,
	"pending":   BadgePending,
	"cancelled": BadgeCancelled,
	"canceled":  BadgeCancelled,
}

var badgeKeyReplacer = strings.NewReplacer(" ", "", "_", "", "-", "", "\t", "")

// BadgeFor maps a raw status label to its badge category. Matching ignores case,
// blanks, underscores and hyphens, so "In Transit", "IN_TRANSIT" and "in-transit"
// all map to BadgeInTransit. Anything unrecognized, including "", is BadgeUnknown.
func BadgeFor(raw string) Badge {
	key := strings.ToLower(badgeKeyReplacer.Replace(raw))
	if badge, ok := badgesByKey[key]; ok {
		return badge
	}
	return BadgeUnknown
}

func (b Badge) String() string {
	return string(b)
}
