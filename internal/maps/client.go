// README: Lazily created Google Maps client shared by the route and places services.
package maps

import (
	"errors"
	"fmt"
	"sync"

	"googlemaps.github.io/maps"
)

var ErrMissingAPIKey = errors.New("maps api key is not configured")

// Handle owns the process-wide Maps client. The client is built on the first
// Ensure call and kept for the life of the process.
type Handle struct {
	apiKey string
	opts   []maps.ClientOption

	once   sync.Once
	client *maps.Client
	err    error
}

func NewHandle(apiKey string, opts ...maps.ClientOption) *Handle {
	return &Handle{apiKey: apiKey, opts: opts}
}

// Ensure returns the shared client, creating it once. Safe for concurrent use.
func (h *Handle) Ensure() (*maps.Client, error) {
	if h == nil || h.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	h.once.Do(func() {
		opts := append([]maps.ClientOption{maps.WithAPIKey(h.apiKey)}, h.opts...)
		client, err := maps.NewClient(opts...)
		if err != nil {
			h.err = fmt.Errorf("failed to create maps client: %w", err)
			return
		}
		h.client = client
	})
	return h.client, h.err
}

// Configured reports whether an API key was supplied.
func (h *Handle) Configured() bool {
	return h != nil && h.apiKey != ""
}
