package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"unicode/utf8"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// GraphsClient implements litegraph.GraphsClient.
type GraphsClient struct {
	exister
	creator[litegraph.Graph]
	retriever[litegraph.Graph]
	allRetriever[litegraph.Graph]
	manyRetriever[litegraph.Graph]
	firstRetriever[litegraph.GraphSearchRequest, litegraph.Graph]
	updater[litegraph.Graph]
	deleter
	forceDeleter
	searcher[litegraph.GraphSearchRequest, litegraph.GraphSearchResult]
	enumerator[litegraph.Graph]
	statisticsRetriever[litegraph.GraphStatistics]

	r *resource
}

// NewGraphsClient creates a new graphs client.
func NewGraphsClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *GraphsClient {
	r := newResource(httpClient, endpoint.Graphs, scope, logger)

	return &GraphsClient{
		exister:             exister{r},
		creator:             creator[litegraph.Graph]{r},
		retriever:           retriever[litegraph.Graph]{r},
		allRetriever:        allRetriever[litegraph.Graph]{r},
		manyRetriever:       manyRetriever[litegraph.Graph]{r},
		firstRetriever:      firstRetriever[litegraph.GraphSearchRequest, litegraph.Graph]{r},
		updater:             updater[litegraph.Graph]{r},
		deleter:             deleter{r},
		forceDeleter:        forceDeleter{r},
		searcher:            searcher[litegraph.GraphSearchRequest, litegraph.GraphSearchResult]{r},
		enumerator:          enumerator[litegraph.Graph]{r},
		statisticsRetriever: statisticsRetriever[litegraph.GraphStatistics]{r},
		r:                   r,
	}
}

// graphOrScope returns graphGUID, falling back to the scoped graph.
func (c *GraphsClient) graphOrScope(graphGUID string) (string, error) {
	if graphGUID != "" {
		return graphGUID, nil
	}

	if c.r.scope.GraphGUID == "" {
		return "", litegraph.ErrGraphRequired
	}

	return c.r.scope.GraphGUID, nil
}

// ExportGEXF exports a graph as GEXF XML. Any failure is reported as
// litegraph.ErrExport wrapping the cause.
func (c *GraphsClient) ExportGEXF(ctx context.Context, graphGUID string, includeData bool) (string, error) {
	xml, err := c.exportGEXF(ctx, graphGUID, includeData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", litegraph.ErrExport, err)
	}

	return xml, nil
}

func (c *GraphsClient) exportGEXF(ctx context.Context, graphGUID string, includeData bool) (string, error) {
	graph, err := c.graphOrScope(graphGUID)
	if err != nil {
		return "", err
	}

	path, err := c.r.v1(
		[]string{graph, constants.SegmentExport, constants.ExportFormatGEXF},
		endpoint.FlagIf(constants.QueryIncludeData, includeData)...,
	)
	if err != nil {
		return "", err
	}

	resp, err := c.r.send(ctx, "exporting", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return "", err
	}

	if !utf8.Valid(resp.Body) {
		return "", fmt.Errorf("graph %s: %w", graph, errNotText)
	}

	return string(resp.Body), nil
}

// BatchExistence reports which of the requested nodes, edges and edge
// endpoints exist in a graph.
func (c *GraphsClient) BatchExistence(ctx context.Context, graphGUID string, req *litegraph.ExistenceRequest) (*litegraph.ExistenceResult, error) {
	if req == nil {
		return nil, litegraph.ErrNilInput
	}

	if req.Empty() {
		return nil, litegraph.ErrNoExistenceCheck
	}

	err := litegraph.Validate(req)
	if err != nil {
		return nil, err
	}

	graph, err := c.graphOrScope(graphGUID)
	if err != nil {
		return nil, err
	}

	path, err := c.r.v1([]string{graph, constants.SegmentExistence})
	if err != nil {
		return nil, err
	}

	resp, err := c.r.send(ctx, "checking existence in", &http.Request{Method: nethttp.MethodPost, Path: path, Body: req})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.ExistenceResult](resp, "existence result")
}
