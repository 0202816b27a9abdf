package grpcmw

import (
	"time"
)

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	traceKey   string
	requestKey string
	now        func() time.Time
}

// WithTraceKey customizes the metadata key used to populate the trace identifier.
func WithTraceKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.traceKey = name
	}
}

// WithRequestKey customizes the metadata key used to populate the request identifier.
func WithRequestKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.requestKey = name
	}
}

// WithClock replaces the time source used to measure call durations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if o == nil || now == nil {
			return
		}

		o.now = now
	}
}
