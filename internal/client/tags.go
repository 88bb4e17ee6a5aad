package client

import (
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// TagsClient implements litegraph.TagsClient.
type TagsClient struct {
	exister
	creator[litegraph.Tag]
	multiCreator[litegraph.Tag]
	retriever[litegraph.Tag]
	allRetriever[litegraph.Tag]
	manyRetriever[litegraph.Tag]
	updater[litegraph.Tag]
	deleter
	multiDeleter
	enumerator[litegraph.Tag]
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *TagsClient {
	r := newResource(httpClient, endpoint.Tags, scope, logger)

	return &TagsClient{
		exister:       exister{r},
		creator:       creator[litegraph.Tag]{r},
		multiCreator:  multiCreator[litegraph.Tag]{r},
		retriever:     retriever[litegraph.Tag]{r},
		allRetriever:  allRetriever[litegraph.Tag]{r},
		manyRetriever: manyRetriever[litegraph.Tag]{r},
		updater:       updater[litegraph.Tag]{r},
		deleter:       deleter{r},
		multiDeleter:  multiDeleter{r},
		enumerator:    enumerator[litegraph.Tag]{r},
	}
}

// LabelsClient implements litegraph.LabelsClient.
type LabelsClient struct {
	exister
	creator[litegraph.Label]
	multiCreator[litegraph.Label]
	retriever[litegraph.Label]
	allRetriever[litegraph.Label]
	manyRetriever[litegraph.Label]
	updater[litegraph.Label]
	deleter
	multiDeleter
	enumerator[litegraph.Label]
}

// NewLabelsClient creates a new labels client.
func NewLabelsClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *LabelsClient {
	r := newResource(httpClient, endpoint.Labels, scope, logger)

	return &LabelsClient{
		exister:       exister{r},
		creator:       creator[litegraph.Label]{r},
		multiCreator:  multiCreator[litegraph.Label]{r},
		retriever:     retriever[litegraph.Label]{r},
		allRetriever:  allRetriever[litegraph.Label]{r},
		manyRetriever: manyRetriever[litegraph.Label]{r},
		updater:       updater[litegraph.Label]{r},
		deleter:       deleter{r},
		multiDeleter:  multiDeleter{r},
		enumerator:    enumerator[litegraph.Label]{r},
	}
}
