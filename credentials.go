package gantry

import "context"

// Credentials supplies per-call authorization metadata. The call context
// passes credentials through untouched; only the transport consumes them.
type Credentials interface {
	// RequestMetadata returns the headers that authorize a call to the
	// given audience.
	RequestMetadata(ctx context.Context, audience string) (map[string]string, error)
}
