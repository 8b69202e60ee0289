package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

var (
	ErrOrderHasNoDestination = errors.New("order has no shipping destination")
	ErrCarrierNotOffered     = errors.New("carrier has no complete offer for the order destination")
)

// CreateDeliveryCommandHandler persists a Pending delivery after re-checking,
// inside the transaction, that the order may still be shipped with the carrier.
// A caller's view of the order can be stale, so the checks run against storage.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gate       services.EligibilityGate
	now        func() time.Time
}

// NewCreateDeliveryCommandHandler uses time.Now when now is nil.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, now func() time.Time) CreateDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewEligibilityGate(),
		now:        now,
	}
}

// Handle returns services.ErrOrderNotActivated, ErrOrderHasNoDestination,
// services.ErrNoCarriersForDestination or ErrCarrierNotOffered when the order
// cannot be shipped with the carrier.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.Status().IsActivated() {
		return nil, services.ErrOrderNotActivated
	}
	if o.Destination().IsZero() {
		return nil, ErrOrderHasNoDestination
	}

	offers, err := uow.CarrierOfferRepository().ListByDestination(ctx, o.Destination())
	if err != nil {
		return nil, err
	}

	complete, offered := inspectOffers(offers, cmd.CarrierID())
	verdict := h.gate.Evaluate(services.EligibilityInput{
		Status:       o.Status(),
		OfferCount:   complete,
		HasSelection: offered,
	})
	if !verdict.MayLaunch() {
		if errors.Is(verdict.Err(), services.ErrCarrierNotSelected) {
			return nil, ErrCarrierNotOffered
		}
		return nil, verdict.Err()
	}

	// timestamptz keeps microseconds.
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cmd.CarrierID(), h.now().Truncate(time.Microsecond))
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// inspectOffers counts the complete offers and reports whether carrierID owns one.
func inspectOffers(offers []carrier.Offer, carrierID kernel.UUID) (int, bool) {
	var complete int
	var offered bool
	for _, offer := range offers {
		if !offer.IsComplete() {
			continue
		}
		complete++
		if offer.CarrierID().IsEqual(carrierID) {
			offered = true
		}
	}
	return complete, offered
}
