package testutil

import (
	"context"

	"github.com/broady/gantry"
)

// FakeCredentials returns fixed metadata for every call.
type FakeCredentials struct {
	// Metadata is returned verbatim by RequestMetadata.
	Metadata map[string]string
}

var _ gantry.Credentials = (*FakeCredentials)(nil)

// RequestMetadata returns a copy of Metadata regardless of audience.
func (c *FakeCredentials) RequestMetadata(ctx context.Context, audience string) (map[string]string, error) {
	out := make(map[string]string, len(c.Metadata))
	for k, v := range c.Metadata {
		out[k] = v
	}
	return out, nil
}
