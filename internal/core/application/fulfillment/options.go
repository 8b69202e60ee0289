package fulfillment

import (
	"log/slog"
	"time"
)

const (
	DefaultLaunchTimeout  = 30 * time.Second
	DefaultLookupTimeout  = 10 * time.Second
	DefaultRefreshTimeout = 10 * time.Second
)

type Option func(*Orchestrator)

// WithLaunchTimeout bounds CreateDelivery. Values <= 0 are ignored.
func WithLaunchTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.launchTimeout = d
		}
	}
}

// WithLookupTimeout bounds carrier and line-item lookups. Values <= 0 are ignored.
func WithLookupTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.lookupTimeout = d
		}
	}
}

// WithRefreshTimeout bounds each delivery read and line-item deletion. Values <= 0 are ignored.
func WithRefreshTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.refreshTimeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}
