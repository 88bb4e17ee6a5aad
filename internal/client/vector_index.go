package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// VectorIndexClient implements litegraph.VectorIndexClient. Every operation
// names its graph explicitly.
type VectorIndexClient struct {
	http   *http.Client
	scope  Scope
	logger litegraph.Logger
}

// NewVectorIndexClient creates a new vector index client.
func NewVectorIndexClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *VectorIndexClient {
	return &VectorIndexClient{http: httpClient, scope: scope, logger: logger}
}

func (c *VectorIndexClient) forGraph(graphGUID string) (*resource, error) {
	if graphGUID == "" {
		return nil, litegraph.ErrGraphRequired
	}

	return newResource(c.http, endpoint.VectorIndex, Scope{TenantGUID: c.scope.TenantGUID, GraphGUID: graphGUID}, c.logger), nil
}

// Config reads the index configuration of a graph.
func (c *VectorIndexClient) Config(ctx context.Context, graphGUID string) (*litegraph.VectorIndexConfig, error) {
	r, err := c.forGraph(graphGUID)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{constants.SegmentConfig})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting config for", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.VectorIndexConfig](resp, "vector index config")
}

// Stats reads the index statistics of a graph.
func (c *VectorIndexClient) Stats(ctx context.Context, graphGUID string) (*litegraph.VectorIndexStatistics, error) {
	r, err := c.forGraph(graphGUID)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{constants.SegmentStats})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting statistics for", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.VectorIndexStatistics](resp, "vector index statistics")
}

// Enable creates or replaces the index of a graph.
func (c *VectorIndexClient) Enable(ctx context.Context, graphGUID string, config *litegraph.VectorIndexConfig) (*litegraph.VectorIndexConfig, error) {
	if config == nil {
		return nil, litegraph.ErrNilInput
	}

	err := litegraph.Validate(config)
	if err != nil {
		return nil, err
	}

	r, err := c.forGraph(graphGUID)
	if err != nil {
		return nil, err
	}

	path, err := r.v2([]string{constants.SegmentEnable})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "enabling", &http.Request{Method: nethttp.MethodPut, Path: path, Body: config})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.VectorIndexConfig](resp, "vector index config")
}

// Rebuild rebuilds the index of a graph from its stored vectors.
func (c *VectorIndexClient) Rebuild(ctx context.Context, graphGUID string) error {
	r, err := c.forGraph(graphGUID)
	if err != nil {
		return err
	}

	path, err := r.v2([]string{constants.SegmentRebuild})
	if err != nil {
		return err
	}

	_, err = r.send(ctx, "rebuilding", &http.Request{Method: nethttp.MethodPost, Path: path})

	return err
}

// Delete removes the index of a graph.
func (c *VectorIndexClient) Delete(ctx context.Context, graphGUID string) error {
	r, err := c.forGraph(graphGUID)
	if err != nil {
		return err
	}

	path, err := r.v2(nil)
	if err != nil {
		return err
	}

	_, err = r.send(ctx, "deleting", &http.Request{Method: nethttp.MethodDelete, Path: path})

	return err
}
