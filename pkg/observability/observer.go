// Package observability defines the hook that instrumented components use to
// report individual operations (a backend embedding call, a cache lookup, an
// artifact download) to whatever collects metrics or traces for the process.
//
// Components accept an optional Observer via a WithObserver builder method and
// call it once per operation. A nil observer is always allowed.
package observability

import "time"

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "embedding", "cache", "installer".
	Component string

	// Operation is the verb, e.g. "encode", "get", "download".
	Operation string

	// Resource is the primary target (model name, cache key prefix, bucket).
	Resource string

	// SubResource narrows the target (provider type, object key).
	SubResource string

	Duration time.Duration
	Error    error

	// Size is the number of items or bytes involved, component dependent.
	Size int64

	Metadata map[string]interface{}
}

// Observer receives OperationContext events.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
