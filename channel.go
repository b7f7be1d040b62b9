package gantry

import "context"

// TransportChannel is an opaque handle to the transport an RPC call travels
// over. Call contexts treat it as a capability: an implementation validates
// the one concrete kind it supports and unwraps it at the transport
// boundary, rather than dispatching over arbitrary channel types.
type TransportChannel interface {
	// Transport names the transport kind, such as "grpc" or "fake".
	Transport() string

	// Shutdown releases the channel's resources. It blocks until in-flight
	// calls settle or ctx is done.
	Shutdown(ctx context.Context) error
}
