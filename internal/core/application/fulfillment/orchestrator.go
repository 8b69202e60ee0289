package fulfillment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "fulfillment/internal/core/application/fulfillment"

// Orchestrator coordinates carrier loading, carrier selection, delivery creation and
// delivery-status tracking for one order.
//
// All methods are safe for concurrent use. State is guarded by a mutex that is
// never held across a gateway call. Delivery creation is single-flight: the
// in-flight flag is tested and set under the mutex, so of two concurrent
// LaunchDelivery calls exactly one reaches the gateway and the other is refused
// with services.ErrLaunchInProgress.
//
// Business rules:
//   - A delivery may be launched only when the eligibility gate says ReadyToLaunch
//   - The selected carrier is always one of the complete offers loaded for the
//     current destination; a destination change drops the selection
//   - Offers and selection survive every failure except a failed carrier lookup
//   - Delivery state is replaced only after both the list and the status were read
type Orchestrator struct {
	orderID    kernel.UUID
	gateway    ports.FulfillmentGateway
	ranker     services.CarrierRanker
	gate       services.EligibilityGate
	reconciler services.StockReconciler
	logger     *slog.Logger
	tracer     trace.Tracer

	launchTimeout  time.Duration
	lookupTimeout  time.Duration
	refreshTimeout time.Duration

	mu sync.Mutex

	order *order.Order

	destination         kernel.Country
	destinationResolved bool
	loading             bool
	lookupGen           uint64
	offers              []carrier.Offer
	selection           kernel.UUID

	inFlight bool

	refreshGen        uint64
	appliedRefreshGen uint64
	deliveries        []*delivery.Delivery
	deliveryStatus    string

	lineItemsGen uint64
	lineItems    []*lineitem.LineItem
	oversold     bool
}

// NewOrchestrator creates the workflow for orderID. The orchestrator starts with
// no order snapshot, so the gate reports BlockedOrderNotActivated until
// ObserveOrder is called.
func NewOrchestrator(orderID kernel.UUID, gateway ports.FulfillmentGateway, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		orderID:        orderID,
		gateway:        gateway,
		ranker:         services.NewCarrierRanker(),
		gate:           services.NewEligibilityGate(),
		reconciler:     services.NewStockReconciler(),
		logger:         slog.Default(),
		tracer:         otel.Tracer(tracerName),
		launchTimeout:  DefaultLaunchTimeout,
		lookupTimeout:  DefaultLookupTimeout,
		refreshTimeout: DefaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.With("component", "fulfillment.orchestrator", "order_id", orderID.String())
	return o
}

func (o *Orchestrator) OrderID() kernel.UUID {
	return o.orderID
}

// ObserveOrder records a fresh order snapshot. When the destination differs from
// the one offers were loaded for, or the previous lookup for it failed, carriers
// are reloaded before returning. An order without destination clears offers and
// selection.
func (o *Orchestrator) ObserveOrder(ctx context.Context, snapshot *order.Order) error {
	const op = "observe order"

	if err := snapshot.Validate(); err != nil {
		return newError(CategoryValidation, op, err)
	}
	if !snapshot.ID().IsEqual(o.orderID) {
		return newError(CategoryValidation, op, ErrOrderMismatch)
	}

	o.mu.Lock()
	o.order = snapshot
	destination := snapshot.Destination()
	changed := !destination.IsEqual(o.destination)
	retry := !changed && !o.destinationResolved && !o.loading
	if destination.IsZero() {
		if changed {
			o.lookupGen++
			o.destination = kernel.Country{}
			o.destinationResolved = false
			o.loading = false
			o.offers = nil
			o.selection = kernel.UUID{}
			o.logger.InfoContext(ctx, "order destination cleared")
		}
		o.mu.Unlock()
		return nil
	}
	o.mu.Unlock()

	if !changed && !retry {
		return nil
	}
	return o.LoadCarriersForDestination(ctx, destination)
}

// LoadCarriersForDestination fetches the offers for destination and pre-selects
// the default carrier. Offers and selection are dropped as soon as the load
// starts; until it succeeds the destination is unresolved. A result that arrives
// after a newer load started is discarded with ErrStaleLookup.
func (o *Orchestrator) LoadCarriersForDestination(ctx context.Context, destination kernel.Country) error {
	const op = "load carriers"

	if destination.IsZero() {
		return newError(CategoryValidation, op, ErrDestinationMissing)
	}

	o.mu.Lock()
	o.lookupGen++
	gen := o.lookupGen
	o.destination = destination
	o.destinationResolved = false
	o.loading = true
	o.offers = nil
	o.selection = kernel.UUID{}
	o.mu.Unlock()

	var offers []carrier.Offer
	err := o.call(ctx, "FulfillmentGateway.LookupCarrierOffers", o.lookupTimeout,
		[]attribute.KeyValue{attribute.String("destination", destination.String())},
		func(ctx context.Context) (err error) {
			offers, err = o.gateway.LookupCarrierOffers(ctx, destination)
			return err
		},
	)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.lookupGen {
		o.logger.InfoContext(ctx, "discarding stale carrier lookup", "destination", destination.String())
		return newError(CategoryLookup, op, ErrStaleLookup)
	}
	o.loading = false

	if err != nil {
		o.logger.WarnContext(ctx, "carrier lookup failed", "destination", destination.String(), "error", err)
		return newError(CategoryLookup, op, err)
	}

	o.offers = append([]carrier.Offer(nil), offers...)
	o.destinationResolved = true
	if def, ok := o.ranker.DefaultSelection(o.offers); ok {
		o.selection = def.CarrierID()
	}
	o.logger.InfoContext(ctx, "carrier offers loaded",
		"destination", destination.String(),
		"offers", len(o.offers),
		"selection", o.selection.String(),
	)
	return nil
}

// SelectCarrier makes carrierID the active selection. Only complete offers of the
// current destination can be selected; otherwise the selection is left unchanged.
func (o *Orchestrator) SelectCarrier(carrierID kernel.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.selectableLocked(carrierID); !ok {
		return newError(CategoryValidation, "select carrier", ErrUnknownCarrier)
	}
	o.selection = carrierID
	return nil
}

func (o *Orchestrator) selectableLocked(carrierID kernel.UUID) (carrier.Offer, bool) {
	if carrierID.IsZero() {
		return carrier.Offer{}, false
	}
	for _, offer := range o.offers {
		if offer.IsComplete() && offer.CarrierID().IsEqual(carrierID) {
			return offer, true
		}
	}
	return carrier.Offer{}, false
}

// LaunchDelivery creates a delivery with the selected carrier.
//
// The gate is consulted first; a refusal is a validation *Error carrying the gate
// state and reason, and nothing is called. Once admitted, CreateDelivery runs
// under the launch timeout and the in-flight flag is cleared whatever happens.
// After a successful creation the delivery list and status are refreshed; if that
// refresh fails the created delivery is returned together with a refresh *Error.
func (o *Orchestrator) LaunchDelivery(ctx context.Context) (*delivery.Delivery, error) {
	return o.launch(ctx, "launch delivery", nil)
}

// LaunchDeliveryWith selects carrierID and launches with it in one admission
// step, so no concurrent SelectCarrier can slip in between. An unknown carrier is
// refused like SelectCarrier refuses it and leaves the selection unchanged.
func (o *Orchestrator) LaunchDeliveryWith(ctx context.Context, carrierID kernel.UUID) (*delivery.Delivery, error) {
	return o.launch(ctx, "launch delivery with carrier", &carrierID)
}

func (o *Orchestrator) launch(ctx context.Context, op string, choice *kernel.UUID) (*delivery.Delivery, error) {
	o.mu.Lock()
	if choice != nil {
		if _, ok := o.selectableLocked(*choice); !ok {
			o.mu.Unlock()
			return nil, newError(CategoryValidation, op, ErrUnknownCarrier)
		}
		o.selection = *choice
	}
	eligibility := o.evaluateLocked()
	if !eligibility.MayLaunch() {
		o.mu.Unlock()
		return nil, &Error{
			Category: CategoryValidation,
			Op:       op,
			State:    eligibility.State,
			Cause:    eligibility.Err(),
		}
	}
	o.inFlight = true
	carrierID := o.selection
	o.mu.Unlock()

	created, err := o.createDelivery(ctx, carrierID)
	if err != nil {
		o.logger.ErrorContext(ctx, "delivery creation failed", "carrier_id", carrierID.String(), "error", err)
		return nil, newError(CategoryCreation, op, err)
	}
	o.logger.InfoContext(ctx, "delivery created",
		"delivery_id", created.ID().String(),
		"carrier_id", carrierID.String(),
	)

	if err := o.RefreshDeliveries(ctx); err != nil {
		return created, err
	}
	return created, nil
}

func (o *Orchestrator) createDelivery(ctx context.Context, carrierID kernel.UUID) (*delivery.Delivery, error) {
	defer func() {
		o.mu.Lock()
		o.inFlight = false
		o.mu.Unlock()
	}()

	var created *delivery.Delivery
	err := o.call(ctx, "FulfillmentGateway.CreateDelivery", o.launchTimeout,
		[]attribute.KeyValue{attribute.String("carrier.id", carrierID.String())},
		func(ctx context.Context) (err error) {
			created, err = o.gateway.CreateDelivery(ctx, o.orderID, carrierID)
			return err
		},
	)
	if err == nil && created == nil {
		err = delivery.ErrDeliveryIsNotConstructed
	}
	return created, err
}

// RefreshDeliveries reads the delivery list and then the aggregate status. Local
// state changes only when both reads succeed. Safe to call again to retry.
func (o *Orchestrator) RefreshDeliveries(ctx context.Context) error {
	const op = "refresh deliveries"

	o.mu.Lock()
	o.refreshGen++
	gen := o.refreshGen
	o.mu.Unlock()

	var (
		deliveries []*delivery.Delivery
		status     string
	)
	err := o.call(ctx, "FulfillmentGateway.ListDeliveries", o.refreshTimeout, nil,
		func(ctx context.Context) (err error) {
			deliveries, err = o.gateway.ListDeliveries(ctx, o.orderID)
			return err
		},
	)
	if err == nil {
		err = o.call(ctx, "FulfillmentGateway.AggregateDeliveryStatus", o.refreshTimeout, nil,
			func(ctx context.Context) (err error) {
				status, err = o.gateway.AggregateDeliveryStatus(ctx, o.orderID)
				return err
			},
		)
	}
	if err != nil {
		o.logger.WarnContext(ctx, "delivery refresh failed", "error", err)
		return newError(CategoryRefresh, op, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen < o.appliedRefreshGen {
		return nil
	}
	o.appliedRefreshGen = gen
	o.deliveries = append([]*delivery.Delivery(nil), deliveries...)
	o.deliveryStatus = status
	return nil
}

// DeliveryStatusSummary folds the last fetched aggregate status into a badge.
func (o *Orchestrator) DeliveryStatusSummary() delivery.Badge {
	o.mu.Lock()
	defer o.mu.Unlock()
	return delivery.BadgeFor(o.deliveryStatus)
}

// ObserveLineItems replaces the line-item set and recomputes the oversell flag.
func (o *Orchestrator) ObserveLineItems(items []*lineitem.LineItem) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lineItemsGen++
	o.setLineItemsLocked(items)
}

func (o *Orchestrator) setLineItemsLocked(items []*lineitem.LineItem) {
	o.lineItems = append([]*lineitem.LineItem(nil), items...)
	o.oversold = o.reconciler.IsOversold(o.lineItems)
}

// RefreshLineItems re-reads the order's line items. On failure the previous set
// and flag are kept. A result older than a set pushed through ObserveLineItems
// meanwhile is dropped.
func (o *Orchestrator) RefreshLineItems(ctx context.Context) error {
	o.mu.Lock()
	o.lineItemsGen++
	gen := o.lineItemsGen
	o.mu.Unlock()

	var items []*lineitem.LineItem
	err := o.call(ctx, "FulfillmentGateway.ListLineItems", o.lookupTimeout, nil,
		func(ctx context.Context) (err error) {
			items, err = o.gateway.ListLineItems(ctx, o.orderID)
			return err
		},
	)
	if err != nil {
		o.logger.WarnContext(ctx, "line item lookup failed", "error", err)
		return newError(CategoryLookup, "refresh line items", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen == o.lineItemsGen {
		o.setLineItemsLocked(items)
	}
	return nil
}

// DeleteLineItem deletes one of the order's loaded line items and re-reads the
// remaining ones. An id outside the loaded set is a validation *Error wrapping
// ErrLineItemNotInOrder, and nothing is called.
func (o *Orchestrator) DeleteLineItem(ctx context.Context, lineItemID kernel.UUID) error {
	const op = "delete line item"

	if !o.ownsLineItem(lineItemID) {
		return newError(CategoryValidation, op, ErrLineItemNotInOrder)
	}

	err := o.call(ctx, "FulfillmentGateway.DeleteLineItem", o.refreshTimeout,
		[]attribute.KeyValue{attribute.String("line_item.id", lineItemID.String())},
		func(ctx context.Context) error {
			return o.gateway.DeleteLineItem(ctx, lineItemID)
		},
	)
	if err != nil {
		o.logger.WarnContext(ctx, "line item deletion failed", "line_item_id", lineItemID.String(), "error", err)
		return newError(CategoryDeletion, op, err)
	}
	return o.RefreshLineItems(ctx)
}

func (o *Orchestrator) ownsLineItem(lineItemID kernel.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, item := range o.lineItems {
		if item.ID().IsEqual(lineItemID) && item.OrderID().IsEqual(o.orderID) {
			return true
		}
	}
	return false
}

// IsOversold reports the flag computed for the last line-item set.
func (o *Orchestrator) IsOversold() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.oversold
}

// GateState evaluates the eligibility gate against the current state.
func (o *Orchestrator) GateState() services.Eligibility {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.evaluateLocked()
}

func (o *Orchestrator) evaluateLocked() services.Eligibility {
	var status order.Status
	if o.order != nil {
		status = o.order.Status()
	}
	_, hasSelection := o.selectableLocked(o.selection)
	return o.gate.Evaluate(services.EligibilityInput{
		Status:       status,
		OfferCount:   o.selectableCountLocked(),
		HasSelection: hasSelection,
		InFlight:     o.inFlight,
	})
}

// selectableCountLocked counts complete offers; incomplete ones can never be launched with.
func (o *Orchestrator) selectableCountLocked() int {
	n := 0
	for _, offer := range o.offers {
		if offer.IsComplete() {
			n++
		}
	}
	return n
}

// call runs fn under a timeout inside a span named after the gateway operation.
func (o *Orchestrator) call(
	ctx context.Context,
	name string,
	timeout time.Duration,
	attrs []attribute.KeyValue,
	fn func(ctx context.Context) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	attrs = append(attrs, attribute.String("order.id", o.orderID.String()))
	ctx, span := o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
