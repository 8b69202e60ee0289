// Package services provides the pure decision logic of fulfillment. Nothing here
// performs I/O or keeps state between calls; every function recomputes its result
// from the inputs it is given.
//
// The package includes:
//   - CarrierRanker: picks the cheapest, fastest and default carrier offer
//   - StockReconciler: flags an order whose line items ask for more than is in stock
//   - EligibilityGate: decides whether a delivery may be launched right now
package services
