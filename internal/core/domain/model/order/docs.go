// Package order models the sales order snapshot consumed by fulfillment.
//
// The package includes:
//   - Order: identifier, destination country and lifecycle status
//   - Status: the order system's status value, with Draft and Activated as the
//     two values fulfillment reasons about
//
// Orders are owned by the external order system. Fulfillment only reads them:
// a delivery may be launched only while the order is Activated, and carrier
// offers are looked up for the order's destination.
package order
