// Package fulfillment runs the per-order delivery workflow.
//
// An Orchestrator owns the fulfillment state of exactly one order: the carrier
// offers loaded for its destination, the selected carrier, the deliveries created
// so far and the line items with their oversell flag. It reaches the outside world
// only through ports.FulfillmentGateway and reports every failure as an *Error
// with a Category, never as a panic.
//
// A Monitor feeds an Orchestrator from change channels, and a Registry keeps one
// Orchestrator and Monitor per open order.
//
// Typical flow:
//
//	orch := fulfillment.NewOrchestrator(orderID, gateway, fulfillment.WithLogger(logger))
//	if err := orch.ObserveOrder(ctx, snapshot); err != nil {
//	    // destination unresolved, retry later
//	}
//	if _, err := orch.LaunchDelivery(ctx); err != nil {
//	    switch fulfillment.CategoryOf(err) {
//	    case fulfillment.CategoryValidation:
//	        // not ready: see orch.GateState()
//	    case fulfillment.CategoryRefresh:
//	        // delivery exists, summary is stale
//	    }
//	}
package fulfillment
