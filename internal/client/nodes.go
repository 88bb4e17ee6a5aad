package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// NodesClient implements litegraph.NodesClient.
type NodesClient struct {
	exister
	creator[litegraph.Node]
	multiCreator[litegraph.Node]
	retriever[litegraph.Node]
	allRetriever[litegraph.Node]
	manyRetriever[litegraph.Node]
	firstRetriever[litegraph.SearchRequest, litegraph.Node]
	updater[litegraph.Node]
	deleter
	multiDeleter
	allDeleter
	searcher[litegraph.SearchRequest, litegraph.NodeSearchResult]
	enumerator[litegraph.Node]

	r *resource
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *NodesClient {
	r := newResource(httpClient, endpoint.Nodes, scope, logger)

	return &NodesClient{
		exister:        exister{r},
		creator:        creator[litegraph.Node]{r},
		multiCreator:   multiCreator[litegraph.Node]{r},
		retriever:      retriever[litegraph.Node]{r},
		allRetriever:   allRetriever[litegraph.Node]{r},
		manyRetriever:  manyRetriever[litegraph.Node]{r},
		firstRetriever: firstRetriever[litegraph.SearchRequest, litegraph.Node]{r},
		updater:        updater[litegraph.Node]{r},
		deleter:        deleter{r},
		multiDeleter:   multiDeleter{r},
		allDeleter:     allDeleter{r},
		searcher:       searcher[litegraph.SearchRequest, litegraph.NodeSearchResult]{r},
		enumerator:     enumerator[litegraph.Node]{r},
		r:              r,
	}
}

// EdgesFrom lists the edges leaving a node.
func (c *NodesClient) EdgesFrom(ctx context.Context, nodeGUID string) ([]litegraph.Edge, error) {
	return traverse[litegraph.Edge](ctx, c.r, nodeGUID, "edges", "from")
}

// EdgesTo lists the edges arriving at a node.
func (c *NodesClient) EdgesTo(ctx context.Context, nodeGUID string) ([]litegraph.Edge, error) {
	return traverse[litegraph.Edge](ctx, c.r, nodeGUID, "edges", "to")
}

// Edges lists every edge touching a node.
func (c *NodesClient) Edges(ctx context.Context, nodeGUID string) ([]litegraph.Edge, error) {
	return traverse[litegraph.Edge](ctx, c.r, nodeGUID, "edges")
}

// Parents lists the nodes with an edge into a node.
func (c *NodesClient) Parents(ctx context.Context, nodeGUID string) ([]litegraph.Node, error) {
	return traverse[litegraph.Node](ctx, c.r, nodeGUID, "parents")
}

// Children lists the nodes a node has an edge to.
func (c *NodesClient) Children(ctx context.Context, nodeGUID string) ([]litegraph.Node, error) {
	return traverse[litegraph.Node](ctx, c.r, nodeGUID, "children")
}

// Neighbors lists parents and children together.
func (c *NodesClient) Neighbors(ctx context.Context, nodeGUID string) ([]litegraph.Node, error) {
	return traverse[litegraph.Node](ctx, c.r, nodeGUID, "neighbors")
}

// traverse reads a list below nodes/{node}.
func traverse[T any](ctx context.Context, r *resource, nodeGUID string, rel ...string) ([]T, error) {
	err := requireGUID(nodeGUID)
	if err != nil {
		return nil, err
	}

	path, err := r.v1(append([]string{nodeGUID}, rel...))
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "traversing", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp, r.name())
}
