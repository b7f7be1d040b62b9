package testutil

import (
	"context"
	"sync"

	"github.com/broady/gantry"
)

// FakeChannel is an inert stand-in for a transport connection. Only its
// identity matters to tests.
type FakeChannel struct {
	// Name distinguishes channels in test assertions.
	Name string
}

// FakeTransportChannel is the one gantry.TransportChannel kind a
// FakeCallContext accepts. It wraps the FakeChannel that call contexts bound
// to it carry.
type FakeTransportChannel struct {
	channel *FakeChannel

	mu       sync.Mutex
	shutdown bool
}

var _ gantry.TransportChannel = (*FakeTransportChannel)(nil)

// NewFakeTransportChannel wraps channel in a transport channel.
func NewFakeTransportChannel(channel *FakeChannel) *FakeTransportChannel {
	return &FakeTransportChannel{channel: channel}
}

// Transport reports "fake".
func (t *FakeTransportChannel) Transport() string {
	return "fake"
}

// Channel returns the wrapped channel.
func (t *FakeTransportChannel) Channel() *FakeChannel {
	return t.channel
}

// Shutdown marks the channel shut down. It never blocks.
func (t *FakeTransportChannel) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shutdown = true
	return nil
}

// IsShutdown reports whether Shutdown has been called, for tests asserting
// client teardown.
func (t *FakeTransportChannel) IsShutdown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shutdown
}
