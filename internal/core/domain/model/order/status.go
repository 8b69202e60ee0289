package order

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the order lifecycle value owned by the external order system.
// Only Draft and Activated carry meaning for fulfillment; every other non-empty
// value is accepted as a platform-defined status and treated as "not activated".
type Status string

const (
	Draft     Status = "Draft"
	Activated Status = "Activated"
)

// Tone is the visual weight a status badge takes in the presentation layer.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDefault Tone = "default"
)

// ParseStatus trims raw and rejects the empty string. Values are case-sensitive,
// as the order system emits them.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsActivated reports whether deliveries may be created for an order in this status.
func (s Status) IsActivated() bool {
	return s == Activated
}

// Tone maps Activated to success, Draft to warning and anything else to default.
func (s Status) Tone() Tone {
	switch s {
	case Activated:
		return ToneSuccess
	case Draft:
		return ToneWarning
	default:
		return ToneDefault
	}
}

func (s Status) String() string {
	return string(s)
}
