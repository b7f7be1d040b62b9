// Package testutil provides in-memory fakes for the gantry call-context
// contracts. Tests exercise call-building and option-merging logic against
// these fakes without a real transport, credentials source, or tracing
// backend.
package testutil

import (
	"time"

	"github.com/broady/gantry"
)

// FakeCallContext is an immutable gantry.CallContext backed by a FakeChannel
// instead of a real transport. Every mutator returns a new instance; a value
// may be shared across goroutines without synchronization.
//
// Unlike production call contexts, a FakeCallContext may carry a nil tracer:
// CreateDefault leaves every field unset so tests can assert merge and
// defaulting behavior field by field.
type FakeCallContext struct {
	creds             gantry.Credentials
	channel           *FakeChannel
	timeout           *time.Duration
	streamWaitTimeout *time.Duration
	streamIdleTimeout *time.Duration
	extraHeaders      *gantry.Headers
	tracer            gantry.Tracer
}

var _ gantry.CallContext = (*FakeCallContext)(nil)

// CreateDefault returns a FakeCallContext with every field unset and no
// extra headers.
func CreateDefault() *FakeCallContext {
	return &FakeCallContext{extraHeaders: gantry.NewHeaders()}
}

// Create returns a FakeCallContext seeded with the transport channel and
// credentials of clientContext. The client context must be bound to a
// *FakeTransportChannel; any other channel kind panics with
// CodeInvalidArgument.
func Create(clientContext *gantry.ClientContext) *FakeCallContext {
	cc := CreateDefault().WithTransportChannel(clientContext.TransportChannel())
	cc = cc.WithCredentials(clientContext.Credentials())
	return cc.(*FakeCallContext)
}

// NullToSelf returns the receiver when other is nil, and other otherwise.
// Panics with CodeInvalidArgument if other is not a *FakeCallContext.
func (c *FakeCallContext) NullToSelf(other gantry.CallContext) gantry.CallContext {
	if other == nil {
		return c
	}
	return mustFake(other)
}

// Merge combines the receiver with other. Fields set on other win; fields
// absent on other fall back to the receiver. Extra headers are combined
// additively, the receiver's values before other's. A nil other returns the
// receiver unchanged.
func (c *FakeCallContext) Merge(other gantry.CallContext) gantry.CallContext {
	if other == nil {
		return c
	}
	fake := mustFake(other)

	out := c.clone()
	if fake.channel != nil {
		out.channel = fake.channel
	}
	if fake.creds != nil {
		out.creds = fake.creds
	}
	if fake.timeout != nil {
		out.timeout = copyDuration(fake.timeout)
	}
	if fake.streamWaitTimeout != nil {
		out.streamWaitTimeout = copyDuration(fake.streamWaitTimeout)
	}
	if fake.streamIdleTimeout != nil {
		out.streamIdleTimeout = copyDuration(fake.streamIdleTimeout)
	}
	if fake.tracer != nil {
		out.tracer = fake.tracer
	}
	out.extraHeaders = gantry.MergeHeaders(c.extraHeaders, fake.extraHeaders)
	return out
}

// WithCredentials returns a copy with the call credentials replaced.
func (c *FakeCallContext) WithCredentials(creds gantry.Credentials) gantry.CallContext {
	out := c.clone()
	out.creds = creds
	return out
}

// WithTransportChannel returns a copy bound to the channel wrapped by tc.
// Only *FakeTransportChannel is accepted; anything else panics with
// CodeInvalidArgument, and a nil tc panics with CodeNullArgument.
func (c *FakeCallContext) WithTransportChannel(tc gantry.TransportChannel) gantry.CallContext {
	if tc == nil {
		panic(gantry.NewError(gantry.CodeNullArgument, "transport channel must not be nil"))
	}
	fake, ok := tc.(*FakeTransportChannel)
	if !ok {
		panic(gantry.Errorf(gantry.CodeInvalidArgument, "expected *testutil.FakeTransportChannel, got %T", tc))
	}
	return c.WithChannel(fake.Channel())
}

// WithChannel returns a copy with the channel replaced.
func (c *FakeCallContext) WithChannel(channel *FakeChannel) gantry.CallContext {
	out := c.clone()
	out.channel = channel
	return out
}

// WithTimeout returns a copy with the call timeout replaced. A nil, zero, or
// negative timeout clears it. If the existing timeout is already at or below
// the new one, the receiver is returned unchanged: a caller may tighten a
// deadline but never extend one.
func (c *FakeCallContext) WithTimeout(timeout *time.Duration) gantry.CallContext {
	// Retry layers use a zero timeout to mean disabled.
	if timeout != nil && *timeout <= 0 {
		timeout = nil
	}

	// Prevent expanding timeouts.
	if timeout != nil && c.timeout != nil && *c.timeout <= *timeout {
		return c
	}

	out := c.clone()
	out.timeout = copyDuration(timeout)
	return out
}

// WithStreamWaitTimeout returns a copy with the stream wait timeout
// replaced. A nil timeout clears it.
func (c *FakeCallContext) WithStreamWaitTimeout(timeout *time.Duration) gantry.CallContext {
	out := c.clone()
	out.streamWaitTimeout = copyDuration(timeout)
	return out
}

// WithStreamIdleTimeout returns a copy with the stream idle timeout
// replaced. Panics with CodeNullArgument if timeout is nil.
func (c *FakeCallContext) WithStreamIdleTimeout(timeout *time.Duration) gantry.CallContext {
	if timeout == nil {
		panic(gantry.NewError(gantry.CodeNullArgument, "stream idle timeout must not be nil"))
	}
	out := c.clone()
	out.streamIdleTimeout = copyDuration(timeout)
	return out
}

// WithExtraHeaders returns a copy with headers merged into the existing
// extra headers. Values for a key already present are appended, never
// replaced. Panics with CodeNullArgument if headers is nil.
func (c *FakeCallContext) WithExtraHeaders(headers *gantry.Headers) gantry.CallContext {
	if headers == nil {
		panic(gantry.NewError(gantry.CodeNullArgument, "extra headers must not be nil"))
	}
	out := c.clone()
	out.extraHeaders = gantry.MergeHeaders(c.extraHeaders, headers)
	return out
}

// WithTracer returns a copy with the tracer replaced. Panics with
// CodeNullArgument if tracer is nil.
func (c *FakeCallContext) WithTracer(tracer gantry.Tracer) gantry.CallContext {
	if tracer == nil {
		panic(gantry.NewError(gantry.CodeNullArgument, "tracer must not be nil"))
	}
	out := c.clone()
	out.tracer = tracer
	return out
}

// Credentials returns the call credentials, or nil when unset.
func (c *FakeCallContext) Credentials() gantry.Credentials {
	return c.creds
}

// Channel returns the channel the call is bound to, or nil when unset.
func (c *FakeCallContext) Channel() *FakeChannel {
	return c.channel
}

// Timeout reports the overall call timeout, or nil when disabled.
func (c *FakeCallContext) Timeout() *time.Duration {
	return copyDuration(c.timeout)
}

// StreamWaitTimeout reports the stream wait timeout, or nil when disabled.
func (c *FakeCallContext) StreamWaitTimeout() *time.Duration {
	return copyDuration(c.streamWaitTimeout)
}

// StreamIdleTimeout reports the stream idle timeout, or nil when disabled.
func (c *FakeCallContext) StreamIdleTimeout() *time.Duration {
	return copyDuration(c.streamIdleTimeout)
}

// ExtraHeaders reports the headers attached to the call. Never nil.
func (c *FakeCallContext) ExtraHeaders() *gantry.Headers {
	return c.extraHeaders
}

// Tracer reports the tracer for the call. Production contexts never carry a
// nil tracer, but a FakeCallContext built by CreateDefault does until
// WithTracer is called.
func (c *FakeCallContext) Tracer() gantry.Tracer {
	return c.tracer
}

func (c *FakeCallContext) clone() *FakeCallContext {
	out := *c
	return &out
}

func mustFake(cc gantry.CallContext) *FakeCallContext {
	fake, ok := cc.(*FakeCallContext)
	if !ok {
		panic(gantry.Errorf(gantry.CodeInvalidArgument, "context must be a *testutil.FakeCallContext, got %T", cc))
	}
	return fake
}

// copyDuration keeps timeout fields value-semantic: callers hold their own
// pointer and must not be able to mutate a context through it.
func copyDuration(d *time.Duration) *time.Duration {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
