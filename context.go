package gantry

import "context"

type contextKey struct {
	name string
}

var callContextKey = &contextKey{"call_context"}

// NewContext returns a context carrying cc. The call-building pipeline uses
// it to hand per-call options to the transport.
func NewContext(ctx context.Context, cc CallContext) context.Context {
	return context.WithValue(ctx, callContextKey, cc)
}

// FromContext returns the CallContext attached to ctx, if any.
func FromContext(ctx context.Context) (CallContext, bool) {
	cc, ok := ctx.Value(callContextKey).(CallContext)
	return cc, ok
}
