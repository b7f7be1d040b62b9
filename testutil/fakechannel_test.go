package testutil

import (
	"context"
	"testing"
)

func TestFakeTransportChannel(t *testing.T) {
	channel := &FakeChannel{Name: "primary"}
	tc := NewFakeTransportChannel(channel)

	if tc.Transport() != "fake" {
		t.Errorf("transport = %q, want %q", tc.Transport(), "fake")
	}
	if tc.Channel() != channel {
		t.Error("expected the wrapped channel")
	}
}

func TestFakeTransportChannelShutdown(t *testing.T) {
	tc := NewFakeTransportChannel(&FakeChannel{})

	if tc.IsShutdown() {
		t.Error("new channel must not report shutdown")
	}
	if err := tc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !tc.IsShutdown() {
		t.Error("expected shutdown to be recorded")
	}
}

func TestFakeCredentials(t *testing.T) {
	creds := &FakeCredentials{Metadata: map[string]string{"authorization": "fake"}}

	md, err := creds.RequestMetadata(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("RequestMetadata() error = %v", err)
	}
	if md["authorization"] != "fake" {
		t.Errorf("metadata = %v", md)
	}

	// Returned metadata is a copy.
	md["authorization"] = "mutated"
	md2, _ := creds.RequestMetadata(context.Background(), "example.com")
	if md2["authorization"] != "fake" {
		t.Error("RequestMetadata exposed internal state")
	}
}
