package client

import (
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// TenantsClient implements litegraph.TenantsClient.
type TenantsClient struct {
	exister
	creator[litegraph.Tenant]
	retriever[litegraph.Tenant]
	allRetriever[litegraph.Tenant]
	manyRetriever[litegraph.Tenant]
	updater[litegraph.Tenant]
	deleter
	forceDeleter
	enumerator[litegraph.Tenant]
	statisticsRetriever[litegraph.TenantStatistics]
}

// NewTenantsClient creates a new tenants client. Tenants are not scoped.
func NewTenantsClient(httpClient *http.Client, logger litegraph.Logger) *TenantsClient {
	r := newResource(httpClient, endpoint.Tenants, Scope{}, logger)

	return &TenantsClient{
		exister:             exister{r},
		creator:             creator[litegraph.Tenant]{r},
		retriever:           retriever[litegraph.Tenant]{r},
		allRetriever:        allRetriever[litegraph.Tenant]{r},
		manyRetriever:       manyRetriever[litegraph.Tenant]{r},
		updater:             updater[litegraph.Tenant]{r},
		deleter:             deleter{r},
		forceDeleter:        forceDeleter{r},
		enumerator:          enumerator[litegraph.Tenant]{r},
		statisticsRetriever: statisticsRetriever[litegraph.TenantStatistics]{r},
	}
}
