package fulfillment

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/services"
)

// Category tells callers which kind of message to show for a failure.
type Category string

const (
	CategoryLookup     Category = "lookup"
	CategoryValidation Category = "validation"
	CategoryCreation   Category = "creation"
	CategoryRefresh    Category = "refresh"
	CategoryDeletion   Category = "deletion"
)

var (
	ErrLookupFailure     = errors.New("lookup failure")
	ErrValidationFailure = errors.New("validation failure")
	ErrCreationFailure   = errors.New("creation failure")
	ErrRefreshFailure    = errors.New("refresh failure")
	ErrDeletionFailure   = errors.New("deletion failure")
)

var (
	ErrUnknownCarrier     = errors.New("carrier is not among the loaded offers")
	ErrStaleLookup        = errors.New("carrier lookup superseded by a newer destination")
	ErrOrderMismatch      = errors.New("order snapshot belongs to another order")
	ErrDestinationMissing = errors.New("order has no destination country")
	ErrLineItemNotInOrder = errors.New("line item does not belong to the order")
)

var sentinels = map[Category]error{
	CategoryLookup:     ErrLookupFailure,
	CategoryValidation: ErrValidationFailure,
	CategoryCreation:   ErrCreationFailure,
	CategoryRefresh:    ErrRefreshFailure,
	CategoryDeletion:   ErrDeletionFailure,
}

// Error is returned by every Orchestrator operation that fails.
//
// errors.Is matches both the category sentinel (ErrCreationFailure, ...) and the
// underlying cause, including gate reasons such as services.ErrLaunchInProgress.
type Error struct {
	Category Category
	Op       string
	// State is set for launches refused by the eligibility gate.
	State services.GateState
	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("fulfillment %s: %s", e.Op, sentinels[e.Category])
	if e.State != "" {
		msg += fmt.Sprintf(" (%s)", e.State)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := sentinels[e.Category]; ok {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// CategoryOf returns the category of a fulfillment error, "" for anything else.
func CategoryOf(err error) Category {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}

func newError(category Category, op string, cause error) *Error {
	return &Error{Category: category, Op: op, Cause: cause}
}
