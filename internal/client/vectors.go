package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// VectorsClient implements litegraph.VectorsClient.
type VectorsClient struct {
	exister
	creator[litegraph.VectorMetadata]
	multiCreator[litegraph.VectorMetadata]
	retriever[litegraph.VectorMetadata]
	allRetriever[litegraph.VectorMetadata]
	manyRetriever[litegraph.VectorMetadata]
	updater[litegraph.VectorMetadata]
	deleter
	multiDeleter
	enumerator[litegraph.VectorMetadata]

	r *resource
}

// NewVectorsClient creates a new vectors client.
func NewVectorsClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *VectorsClient {
	r := newResource(httpClient, endpoint.Vectors, scope, logger)

	return &VectorsClient{
		exister:       exister{r},
		creator:       creator[litegraph.VectorMetadata]{r},
		multiCreator:  multiCreator[litegraph.VectorMetadata]{r},
		retriever:     retriever[litegraph.VectorMetadata]{r},
		allRetriever:  allRetriever[litegraph.VectorMetadata]{r},
		manyRetriever: manyRetriever[litegraph.VectorMetadata]{r},
		updater:       updater[litegraph.VectorMetadata]{r},
		deleter:       deleter{r},
		multiDeleter:  multiDeleter{r},
		enumerator:    enumerator[litegraph.VectorMetadata]{r},
		r:             r,
	}
}

// SearchVectors finds graphs, nodes or edges whose embeddings are close to
// req.Embeddings. Node and edge searches need a graph, taken from the
// request or else the client's scope. A graph search without a graph is
// tenant-wide. SearchType defaults to cosine similarity.
func (c *VectorsClient) SearchVectors(ctx context.Context, req *litegraph.VectorSearchRequest) ([]litegraph.VectorSearchResult, error) {
	if req == nil {
		return nil, litegraph.ErrNilInput
	}

	if len(req.Embeddings) == 0 {
		return nil, litegraph.ErrNoEmbeddings
	}

	body := *req

	if body.TenantGUID == "" {
		body.TenantGUID = c.r.scope.TenantGUID
	}

	if body.SearchType == "" {
		body.SearchType = litegraph.VectorSearchCosineSimilarity
	}

	if body.GraphGUID == "" && body.Domain != litegraph.VectorDomainGraph {
		body.GraphGUID = c.r.scope.GraphGUID
	}

	if body.GraphGUID == "" && body.Domain != litegraph.VectorDomainGraph {
		return nil, litegraph.ErrVectorGraph
	}

	err := litegraph.Validate(&body)
	if err != nil {
		return nil, err
	}

	desc := endpoint.Vectors
	if body.GraphGUID != "" {
		desc = endpoint.GraphVectors
	}

	r := newResource(c.r.http, desc, Scope{TenantGUID: body.TenantGUID, GraphGUID: body.GraphGUID}, c.r.logger)

	path, err := r.v1(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "searching", &http.Request{Method: nethttp.MethodPost, Path: path, Body: &body})
	if err != nil {
		return nil, err
	}

	return decodeList[litegraph.VectorSearchResult](resp, "vector search results")
}
