// Package kernel holds the value objects shared by every aggregate of the fulfillment
// domain:
//   - UUID: identifier of orders, carriers, deliveries, line items and products
//   - Country: ISO 3166-1 destination country used to look up carrier offers
//
// Both are immutable and comparable, so they can be used as map keys.
package kernel
