// Package lineitem models one product line of an order as read from the order system,
// together with the stock-on-hand snapshot for that product at read time.
//
// Quantity, unit price and stock are optional because the source record does not
// require them. Total price is derived, never stored.
package lineitem
