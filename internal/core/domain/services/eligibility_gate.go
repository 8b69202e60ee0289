package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

// GateState classifies whether a delivery may be launched for an order.
type GateState string

const (
	BlockedOrderNotActivated        GateState = "Blocked_OrderNotActivated"
	BlockedNoCarriersForDestination GateState = "Blocked_NoCarriersForDestination"
	AwaitingSelection               GateState = "AwaitingSelection"
	ReadyToLaunch                   GateState = "ReadyToLaunch"
	LaunchInProgress                GateState = "LaunchInProgress"
)

// Refusal reasons, one per non-ready state.
var (
	ErrOrderNotActivated        = errors.New("order is not activated")
	ErrNoCarriersForDestination = errors.New("no carrier offers for the order destination")
	ErrCarrierNotSelected       = errors.New("no carrier selected")
	ErrLaunchInProgress         = errors.New("a delivery launch is already in progress")
)

var reasons = map[GateState]error{
	BlockedOrderNotActivated:        ErrOrderNotActivated,
	BlockedNoCarriersForDestination: ErrNoCarriersForDestination,
	AwaitingSelection:               ErrCarrierNotSelected,
	LaunchInProgress:                ErrLaunchInProgress,
}

func (s GateState) String() string {
	return string(s)
}

// MayLaunch is true only for ReadyToLaunch.
func (s GateState) MayLaunch() bool {
	return s == ReadyToLaunch
}

// Err returns the refusal reason of a non-ready state, nil for ReadyToLaunch.
func (s GateState) Err() error {
	return reasons[s]
}

// EligibilityInput is the current fulfillment state of one order.
type EligibilityInput struct {
	Status       order.Status
	OfferCount   int
	HasSelection bool
	InFlight     bool
}

// Eligibility is the gate's verdict for one EligibilityInput.
type Eligibility struct {
	State GateState
}

func (e Eligibility) MayLaunch() bool {
	return e.State.MayLaunch()
}

// Reason is the machine-readable state code, "" when launch is allowed.
func (e Eligibility) Reason() string {
	if e.MayLaunch() {
		return ""
	}
	return e.State.String()
}

func (e Eligibility) Err() error {
	return e.State.Err()
}

// EligibilityGate decides whether a delivery may be launched.
//
// Launch is allowed iff the order is Activated, at least one offer is loaded,
// a carrier is selected and no launch is in flight. States are checked in this
// order: in flight, not activated, no carriers, no selection.
type EligibilityGate struct{}

func NewEligibilityGate() EligibilityGate {
	return EligibilityGate{}
}

func (EligibilityGate) Evaluate(in EligibilityInput) Eligibility {
	switch {
	case in.InFlight:
		return Eligibility{State: LaunchInProgress}
	case !in.Status.IsActivated():
		return Eligibility{State: BlockedOrderNotActivated}
	case in.OfferCount <= 0:
		return Eligibility{State: BlockedNoCarriersForDestination}
	case !in.HasSelection:
		return Eligibility{State: AwaitingSelection}
	default:
		return Eligibility{State: ReadyToLaunch}
	}
}
