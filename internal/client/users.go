package client

import (
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// UsersClient implements litegraph.UsersClient.
type UsersClient struct {
	exister
	creator[litegraph.User]
	retriever[litegraph.User]
	allRetriever[litegraph.User]
	manyRetriever[litegraph.User]
	updater[litegraph.User]
	deleter
	enumerator[litegraph.User]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *UsersClient {
	r := newResource(httpClient, endpoint.Users, scope, logger)

	return &UsersClient{
		exister:       exister{r},
		creator:       creator[litegraph.User]{r},
		retriever:     retriever[litegraph.User]{r},
		allRetriever:  allRetriever[litegraph.User]{r},
		manyRetriever: manyRetriever[litegraph.User]{r},
		updater:       updater[litegraph.User]{r},
		deleter:       deleter{r},
		enumerator:    enumerator[litegraph.User]{r},
	}
}

// CredentialsClient implements litegraph.CredentialsClient.
type CredentialsClient struct {
	exister
	creator[litegraph.Credential]
	retriever[litegraph.Credential]
	allRetriever[litegraph.Credential]
	manyRetriever[litegraph.Credential]
	updater[litegraph.Credential]
	deleter
	enumerator[litegraph.Credential]
}

// NewCredentialsClient creates a new credentials client.
func NewCredentialsClient(httpClient *http.Client, scope Scope, logger litegraph.Logger) *CredentialsClient {
	r := newResource(httpClient, endpoint.Credentials, scope, logger)

	return &CredentialsClient{
		exister:       exister{r},
		creator:       creator[litegraph.Credential]{r},
		retriever:     retriever[litegraph.Credential]{r},
		allRetriever:  allRetriever[litegraph.Credential]{r},
		manyRetriever: manyRetriever[litegraph.Credential]{r},
		updater:       updater[litegraph.Credential]{r},
		deleter:       deleter{r},
		enumerator:    enumerator[litegraph.Credential]{r},
	}
}
