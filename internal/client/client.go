package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/litegraph/internal/auth"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var (
	_ litegraph.Client               = (*Client)(nil)
	_ litegraph.TenantsClient        = (*TenantsClient)(nil)
	_ litegraph.GraphsClient         = (*GraphsClient)(nil)
	_ litegraph.NodesClient          = (*NodesClient)(nil)
	_ litegraph.EdgesClient          = (*EdgesClient)(nil)
	_ litegraph.TagsClient           = (*TagsClient)(nil)
	_ litegraph.LabelsClient         = (*LabelsClient)(nil)
	_ litegraph.VectorsClient        = (*VectorsClient)(nil)
	_ litegraph.UsersClient          = (*UsersClient)(nil)
	_ litegraph.CredentialsClient    = (*CredentialsClient)(nil)
	_ litegraph.VectorIndexClient    = (*VectorIndexClient)(nil)
	_ litegraph.RoutesClient         = (*RoutesClient)(nil)
	_ litegraph.AdminClient          = (*AdminClient)(nil)
	_ litegraph.AuthenticationClient = (*AuthenticationClient)(nil)
)

// Client implements the litegraph.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       litegraph.Logger
	scope        Scope

	// Resource clients
	tenants        *TenantsClient
	graphs         *GraphsClient
	nodes          *NodesClient
	edges          *EdgesClient
	tags           *TagsClient
	labels         *LabelsClient
	vectors        *VectorsClient
	users          *UsersClient
	credentials    *CredentialsClient
	vectorIndex    *VectorIndexClient
	routes         *RoutesClient
	admin          *AdminClient
	authentication *AuthenticationClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *litegraph.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.MaxRetries > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.MaxRetries, 0))
	}

	if config.Metrics != nil {
		metrics, err := http.NewMetrics(config.Metrics)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithMetrics(metrics))
	}

	if config.TracerProvider != nil {
		httpOpts = append(httpOpts, http.WithTracerProvider(config.TracerProvider))
	}

	return httpOpts, nil
}

// New creates a new LiteGraph client. No request is made.
func New(_ context.Context, config *litegraph.Config) (*Client, error) {
	if config == nil {
		return nil, litegraph.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, litegraph.ErrEndpointRequired
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(config.AccessKey))
}

// NewWithTokenManager creates a new LiteGraph client with a custom token
// manager. config.AccessKey is ignored.
func NewWithTokenManager(config *litegraph.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, litegraph.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, litegraph.ErrEndpointRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
		scope:        Scope{TenantGUID: config.TenantGUID, GraphGUID: config.GraphGUID},
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.tenants = NewTenantsClient(c.httpClient, c.logger)
	c.graphs = NewGraphsClient(c.httpClient, c.scope, c.logger)
	c.nodes = NewNodesClient(c.httpClient, c.scope, c.logger)
	c.edges = NewEdgesClient(c.httpClient, c.scope, c.logger)
	c.tags = NewTagsClient(c.httpClient, c.scope, c.logger)
	c.labels = NewLabelsClient(c.httpClient, c.scope, c.logger)
	c.vectors = NewVectorsClient(c.httpClient, c.scope, c.logger)
	c.users = NewUsersClient(c.httpClient, c.scope, c.logger)
	c.credentials = NewCredentialsClient(c.httpClient, c.scope, c.logger)
	c.vectorIndex = NewVectorIndexClient(c.httpClient, c.scope, c.logger)
	c.routes = NewRoutesClient(c.httpClient, c.scope, c.logger)
	c.admin = NewAdminClient(c.httpClient, c.logger)
	c.authentication = NewAuthenticationClient(c.httpClient, c.logger)
}

// WithGraph returns a view of the client scoped to graphGUID. The view
// shares the transport, so closing either closes both.
func (c *Client) WithGraph(graphGUID string) litegraph.Client {
	view := &Client{
		httpClient:   c.httpClient,
		tokenManager: c.tokenManager,
		baseURL:      c.baseURL,
		logger:       c.logger,
		scope:        Scope{TenantGUID: c.scope.TenantGUID, GraphGUID: graphGUID},
	}

	view.initializeResourceClients()

	return view
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Endpoint returns the base URL.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// TenantGUID implements litegraph.Client.TenantGUID.
func (c *Client) TenantGUID() string {
	return c.scope.TenantGUID
}

// GraphGUID implements litegraph.Client.GraphGUID.
func (c *Client) GraphGUID() string {
	return c.scope.GraphGUID
}

// Close implements litegraph.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Closed reports whether the transport has been closed.
func (c *Client) Closed() bool {
	return c.httpClient.Closed()
}

// Resource client accessors

// Tenants implements litegraph.Client.Tenants.
func (c *Client) Tenants() litegraph.TenantsClient {
	return c.tenants
}

// Graphs implements litegraph.Client.Graphs.
func (c *Client) Graphs() litegraph.GraphsClient {
	return c.graphs
}

// Nodes implements litegraph.Client.Nodes.
func (c *Client) Nodes() litegraph.NodesClient {
	return c.nodes
}

// Edges implements litegraph.Client.Edges.
func (c *Client) Edges() litegraph.EdgesClient {
	return c.edges
}

// Tags implements litegraph.Client.Tags.
func (c *Client) Tags() litegraph.TagsClient {
	return c.tags
}

// Labels implements litegraph.Client.Labels.
func (c *Client) Labels() litegraph.LabelsClient {
	return c.labels
}

// Vectors implements litegraph.Client.Vectors.
func (c *Client) Vectors() litegraph.VectorsClient {
	return c.vectors
}

// Users implements litegraph.Client.Users.
func (c *Client) Users() litegraph.UsersClient {
	return c.users
}

// Credentials implements litegraph.Client.Credentials.
func (c *Client) Credentials() litegraph.CredentialsClient {
	return c.credentials
}

// VectorIndex implements litegraph.Client.VectorIndex.
func (c *Client) VectorIndex() litegraph.VectorIndexClient {
	return c.vectorIndex
}

// Routes implements litegraph.Client.Routes.
func (c *Client) Routes() litegraph.RoutesClient {
	return c.routes
}

// Admin implements litegraph.Client.Admin.
func (c *Client) Admin() litegraph.AdminClient {
	return c.admin
}

// Authentication implements litegraph.Client.Authentication.
func (c *Client) Authentication() litegraph.AuthenticationClient {
	return c.authentication
}
