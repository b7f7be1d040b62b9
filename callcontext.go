// Package gantry defines the per-call option layer of an RPC client: the
// CallContext contract carried through a call, the transport, credential and
// tracing capabilities it bundles, and the client configuration those are
// seeded from. Transports, retry pipelines, and tracing backends live
// elsewhere; this package defines the contracts they meet.
package gantry

import "time"

// CallContext bundles the options an RPC client applies to a single call:
// credentials, transport channel, timeouts, extra headers, and a tracer.
//
// Implementations are immutable values. Every mutator returns a new instance
// and never alters the receiver, so a CallContext may be shared across any
// number of goroutines without synchronization.
//
// Mutators validate their arguments and panic with a *Error carrying
// CodeInvalidArgument or CodeNullArgument on misuse. Passing a bad argument
// is a programming error, not a runtime condition; there is nothing for the
// call site to recover.
type CallContext interface {
	// WithCredentials returns a copy with the call credentials replaced.
	WithCredentials(creds Credentials) CallContext

	// WithTransportChannel returns a copy bound to the given transport
	// channel. An implementation accepts only its own matching channel kind
	// and panics with CodeInvalidArgument for anything else, or with
	// CodeNullArgument if tc is nil.
	WithTransportChannel(tc TransportChannel) CallContext

	// WithTimeout returns a copy with the call timeout replaced. A nil,
	// zero, or negative timeout clears it. If the existing timeout is
	// already at or below the new one, the receiver is returned unchanged:
	// a caller may tighten a deadline but never extend one.
	WithTimeout(timeout *time.Duration) CallContext

	// WithStreamWaitTimeout returns a copy with the stream wait timeout
	// replaced. A nil timeout clears it.
	WithStreamWaitTimeout(timeout *time.Duration) CallContext

	// WithStreamIdleTimeout returns a copy with the stream idle timeout
	// replaced. Panics with CodeNullArgument if timeout is nil.
	WithStreamIdleTimeout(timeout *time.Duration) CallContext

	// WithExtraHeaders returns a copy with headers merged into the existing
	// extra headers. Values for a key already present are appended, never
	// replaced. Panics with CodeNullArgument if headers is nil.
	WithExtraHeaders(headers *Headers) CallContext

	// WithTracer returns a copy with the tracer replaced. Panics with
	// CodeNullArgument if tracer is nil.
	WithTracer(tracer Tracer) CallContext

	// NullToSelf returns the receiver when other is nil, and other
	// otherwise. Panics with CodeInvalidArgument when other is a different
	// CallContext implementation than the receiver.
	NullToSelf(other CallContext) CallContext

	// Merge combines the receiver with other and returns the result. Fields
	// set on other win; fields absent on other fall back to the receiver.
	// Extra headers are the exception: they are always combined additively,
	// the receiver's values before other's. A nil other returns the
	// receiver unchanged.
	Merge(other CallContext) CallContext

	// Timeout reports the overall call timeout, or nil when disabled.
	Timeout() *time.Duration

	// StreamWaitTimeout reports how long to wait for the next stream
	// response before giving up, or nil when disabled.
	StreamWaitTimeout() *time.Duration

	// StreamIdleTimeout reports how long a stream may sit idle before it is
	// torn down, or nil when disabled.
	StreamIdleTimeout() *time.Duration

	// ExtraHeaders reports the headers attached to the call. Never nil.
	ExtraHeaders() *Headers

	// Tracer reports the tracer for the call. Production paths seed a
	// tracer (NoopTracer at minimum) at client construction, so in
	// well-formed use this never returns nil; test fixtures may leave it
	// unset.
	Tracer() Tracer
}

// DurationPtr returns a pointer to d, for the optional timeout fields of a
// CallContext.
func DurationPtr(d time.Duration) *time.Duration {
	return &d
}
