// Package delivery models a shipment created for an order with a chosen carrier.
//
// Deliveries are created once (status Pending) and never mutated afterwards by
// fulfillment; the carrier system moves them through its own statuses and the
// service observes the changes by re-reading. Status values coming back from that
// system are free text, so BadgeFor folds them into a small fixed set of badge
// categories for display.
package delivery
