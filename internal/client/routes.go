package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// RoutesClient implements litegraph.RoutesClient.
type RoutesClient struct {
	http   *http.Client
	scope  Scope
	logger litegraph.Logger
}

// NewRoutesClient creates a new routes client.
func NewRoutesClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *RoutesClient {
	return &RoutesClient{http: httpClient, scope: scope, logger: logger}
}

// Find returns the routes between req.From and req.To. An empty req.Graph
// means the scoped graph.
func (c *RoutesClient) Find(ctx context.Context, req *litegraph.RouteRequest) (*litegraph.RouteResult, error) {
	if req == nil {
		return nil, litegraph.ErrNilInput
	}

	body := *req
	if body.Graph == "" {
		body.Graph = c.scope.GraphGUID
	}

	if body.Graph == "" {
		return nil, litegraph.ErrGraphRequired
	}

	err := litegraph.Validate(&body)
	if err != nil {
		return nil, err
	}

	r := newResource(c.http, endpoint.Routes, Scope{TenantGUID: c.scope.TenantGUID, GraphGUID: body.Graph}, c.logger)

	path, err := r.v1(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "finding", &http.Request{Method: nethttp.MethodPost, Path: path, Body: &body})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.RouteResult](resp, "route result")
}
