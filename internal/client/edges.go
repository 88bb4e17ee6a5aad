package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// EdgesClient implements litegraph.EdgesClient.
type EdgesClient struct {
	exister
	creator[litegraph.Edge]
	multiCreator[litegraph.Edge]
	retriever[litegraph.Edge]
	allRetriever[litegraph.Edge]
	manyRetriever[litegraph.Edge]
	firstRetriever[litegraph.SearchRequest, litegraph.Edge]
	updater[litegraph.Edge]
	deleter
	multiDeleter
	allDeleter
	searcher[litegraph.SearchRequest, litegraph.EdgeSearchResult]
	enumerator[litegraph.Edge]

	r *resource
}

// NewEdgesClient creates a new edges client.
func NewEdgesClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *EdgesClient {
	r := newResource(httpClient, endpoint.Edges, scope, logger)

	return &EdgesClient{
		exister:        exister{r},
		creator:        creator[litegraph.Edge]{r},
		multiCreator:   multiCreator[litegraph.Edge]{r},
		retriever:      retriever[litegraph.Edge]{r},
		allRetriever:   allRetriever[litegraph.Edge]{r},
		manyRetriever:  manyRetriever[litegraph.Edge]{r},
		firstRetriever: firstRetriever[litegraph.SearchRequest, litegraph.Edge]{r},
		updater:        updater[litegraph.Edge]{r},
		deleter:        deleter{r},
		multiDeleter:   multiDeleter{r},
		allDeleter:     allDeleter{r},
		searcher:       searcher[litegraph.SearchRequest, litegraph.EdgeSearchResult]{r},
		enumerator:     enumerator[litegraph.Edge]{r},
		r:              r,
	}
}

// Between lists the edges from one node to another.
func (c *EdgesClient) Between(ctx context.Context, fromGUID, toGUID string) ([]litegraph.Edge, error) {
	if fromGUID == "" || toGUID == "" {
		return nil, litegraph.ErrGUIDRequired
	}

	path, err := c.r.v1(
		[]string{constants.SegmentBetween},
		endpoint.Value(constants.QueryFrom, fromGUID),
		endpoint.Value(constants.QueryTo, toGUID),
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.r.send(ctx, "getting edges between", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decodeList[litegraph.Edge](resp, c.r.name())
}
