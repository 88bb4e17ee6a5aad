package lgclient

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fivetwenty-io/litegraph/internal/client"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// current holds the process-wide client set by Configure.
var current atomic.Pointer[client.Client]

// New creates a new LiteGraph client. The endpoint is normalized: a trailing
// slash is dropped and "http://" is assumed when no scheme is given.
func New(ctx context.Context, config *litegraph.Config) (litegraph.Client, error) {
	c, err := newClient(ctx, config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func newClient(ctx context.Context, config *litegraph.Config) (*client.Client, error) {
	if config == nil {
		return nil, litegraph.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, litegraph.ErrEndpointRequired
	}

	// Copy so later changes by the caller never reach a live client.
	cfg := *config
	cfg.Endpoint = normalizeEndpoint(cfg.Endpoint)

	c, err := client.New(ctx, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}

	return endpoint
}

// Configure creates the process-wide client used by Default. A tenant GUID
// is required; graphGUID and accessKey may be empty.
func Configure(endpoint, tenantGUID, graphGUID, accessKey string) error {
	return ConfigureWith(&litegraph.Config{
		Endpoint:   endpoint,
		TenantGUID: tenantGUID,
		GraphGUID:  graphGUID,
		AccessKey:  accessKey,
	})
}

// ConfigureWith is Configure with full control over the client settings.
//
// The new client replaces the previous one atomically and the previous one
// is closed. When two goroutines configure concurrently the last swap wins.
// Calls already running on the old client finish normally; calls started on
// a stale handle afterwards fail with litegraph.ErrClientClosed.
func ConfigureWith(config *litegraph.Config) error {
	if config == nil {
		return litegraph.ErrConfigRequired
	}

	if config.TenantGUID == "" {
		return litegraph.ErrTenantRequired
	}

	c, err := newClient(context.Background(), config)
	if err != nil {
		return err
	}

	if old := current.Swap(c); old != nil {
		_ = old.Close()
	}

	return nil
}

// Default returns the process-wide client, or litegraph.ErrNotConfigured
// when Configure has not been called.
func Default() (litegraph.Client, error) {
	c := current.Load()
	if c == nil {
		return nil, litegraph.ErrNotConfigured
	}

	return c, nil
}

// MustDefault is like Default but panics when no client is configured.
func MustDefault() litegraph.Client {
	c, err := Default()
	if err != nil {
		panic(err)
	}

	return c
}

// Close closes and forgets the process-wide client. It is a no-op when
// nothing is configured.
func Close() error {
	c := current.Swap(nil)
	if c == nil {
		return nil
	}

	return c.Close()
}
