// Package guard holds ConstructorGuard, the marker used across the fulfillment core to
// reject zero-value commands, queries and domain values that bypassed their constructors.
package guard
