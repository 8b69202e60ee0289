// Package queries holds the read operations of the fulfillment data service.
// Handlers run raw SQL through GORM and scan into their own row types before
// rebuilding domain values.
package queries
