package fulfillment

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

var ErrRegistryClosed = errors.New("fulfillment registry is closed")

type session struct {
	orchestrator *Orchestrator
	orders       chan *order.Order
	lineItems    chan []*lineitem.LineItem

	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	lastUsed time.Time
}

// Registry keeps one Orchestrator per open order, each fed by its own Monitor.
// Change notifications for orders without a session are ignored. Sessions not
// opened or looked up for a while are dropped by EvictIdle.
type Registry struct {
	gateway ports.FulfillmentGateway
	source  ports.OrderSource
	opts    []Option
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	sessions map[kernel.UUID]*session
	closed   bool
}

func NewRegistry(
	gateway ports.FulfillmentGateway,
	source ports.OrderSource,
	logger *slog.Logger,
	opts ...Option,
) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		gateway:  gateway,
		source:   source,
		opts:     append(opts, WithLogger(logger)),
		logger:   logger.With("component", "fulfillment.registry"),
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[kernel.UUID]*session),
	}
}

// Open returns the session orchestrator for orderID, creating it on first use.
// A new session reads the order, loads its carriers, deliveries and line items;
// failures of those initial loads are logged and leave the corresponding state
// empty, since the caller can retry them through the orchestrator.
func (r *Registry) Open(ctx context.Context, orderID kernel.UUID) (*Orchestrator, error) {
	if orch, ok := r.Get(orderID); ok {
		return orch, nil
	}

	snapshot, err := r.source.GetOrder(ctx, orderID)
	if err != nil {
		return nil, newError(CategoryLookup, "open session", err)
	}

	orch := NewOrchestrator(orderID, r.gateway, r.opts...)
	if err := orch.ObserveOrder(ctx, snapshot); err != nil {
		r.logger.WarnContext(ctx, "initial carrier load failed", "order_id", orderID.String(), "error", err)
	}
	if err := orch.RefreshDeliveries(ctx); err != nil {
		r.logger.WarnContext(ctx, "initial delivery load failed", "order_id", orderID.String(), "error", err)
	}
	if err := orch.RefreshLineItems(ctx); err != nil {
		r.logger.WarnContext(ctx, "initial line item load failed", "order_id", orderID.String(), "error", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRegistryClosed
	}
	if existing, ok := r.sessions[orderID]; ok {
		existing.lastUsed = time.Now()
		return existing.orchestrator, nil
	}

	sessionCtx, cancel := context.WithCancel(r.ctx)
	s := &session{
		orchestrator: orch,
		orders:       make(chan *order.Order, 1),
		lineItems:    make(chan []*lineitem.LineItem, 1),
		ctx:          sessionCtx,
		cancel:       cancel,
		done:         make(chan struct{}),
		lastUsed:     time.Now(),
	}
	r.sessions[orderID] = s

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(s.done)
		NewMonitor(orch, r.logger).Run(sessionCtx, s.orders, s.lineItems)
	}()

	r.logger.InfoContext(ctx, "session opened", "order_id", orderID.String())
	return orch, nil
}

func (r *Registry) Get(orderID kernel.UUID) (*Orchestrator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[orderID]
	if !ok {
		return nil, false
	}
	s.lastUsed = time.Now()
	return s.orchestrator, true
}

// EvictIdle closes the sessions last opened or looked up before cutoff and waits
// for their monitors to stop. It returns the number of sessions closed.
func (r *Registry) EvictIdle(ctx context.Context, cutoff time.Time) int {
	r.mu.Lock()
	var idle []*session
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.cancel()
		<-s.done
		r.logger.InfoContext(ctx, "session evicted", "order_id", s.orchestrator.OrderID().String())
	}
	return len(idle)
}

// Each calls fn for every open session.
func (r *Registry) Each(fn func(*Orchestrator)) {
	r.mu.Lock()
	orchestrators := make([]*Orchestrator, 0, len(r.sessions))
	for _, s := range r.sessions {
		orchestrators = append(orchestrators, s.orchestrator)
	}
	r.mu.Unlock()

	for _, orch := range orchestrators {
		fn(orch)
	}
}

func (r *Registry) session(orderID kernel.UUID) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[orderID]
	return s, ok
}

// NotifyOrderChanged reads the order again and hands the snapshot to its monitor.
func (r *Registry) NotifyOrderChanged(ctx context.Context, orderID kernel.UUID) error {
	s, ok := r.session(orderID)
	if !ok {
		return nil
	}

	snapshot, err := r.source.GetOrder(ctx, orderID)
	if err != nil {
		return newError(CategoryLookup, "order changed", err)
	}

	select {
	case s.orders <- snapshot:
		return nil
	case <-r.ctx.Done():
		return ErrRegistryClosed
	case <-s.ctx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NotifyLineItemsChanged reads the order's line items again and hands them to its monitor.
func (r *Registry) NotifyLineItemsChanged(ctx context.Context, orderID kernel.UUID) error {
	s, ok := r.session(orderID)
	if !ok {
		return nil
	}

	items, err := r.gateway.ListLineItems(ctx, orderID)
	if err != nil {
		return newError(CategoryLookup, "line items changed", err)
	}

	select {
	case s.lineItems <- items:
		return nil
	case <-r.ctx.Done():
		return ErrRegistryClosed
	case <-s.ctx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resync re-reads orders and line items of every session, for use after missed
// notifications.
func (r *Registry) Resync(ctx context.Context) error {
	var errs []error
	r.Each(func(orch *Orchestrator) {
		errs = append(errs,
			r.NotifyOrderChanged(ctx, orch.OrderID()),
			r.NotifyLineItemsChanged(ctx, orch.OrderID()),
		)
	})
	return errors.Join(errs...)
}

// Close stops every monitor and waits for them to exit.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}
