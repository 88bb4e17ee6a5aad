package litegraph

import (
	"context"
)

// RetrieveOptions controls what a single-object read returns.
type RetrieveOptions struct {
	// IncludeData returns the object's Data payload.
	IncludeData bool
	// IncludeSubordinates returns labels, tags and vectors.
	IncludeSubordinates bool
}

// Capabilities. Resource clients are compositions of these.

// Exister checks whether an object exists. Any failure reads as false.
type Exister interface {
	Exists(ctx context.Context, guid string) bool
}

// Creator creates a single object.
type Creator[T any] interface {
	Create(ctx context.Context, item *T) (*T, error)
}

// MultiCreator creates objects in one bulk request. A nil slice is an
// ErrNilInput; an empty one returns an empty result without a request.
type MultiCreator[T any] interface {
	CreateMany(ctx context.Context, items []T) ([]T, error)
}

// Retriever reads a single object.
type Retriever[T any] interface {
	Retrieve(ctx context.Context, guid string, opts *RetrieveOptions) (*T, error)
}

// AllRetriever lists every object in scope.
type AllRetriever[T any] interface {
	RetrieveAll(ctx context.Context) ([]T, error)
}

// ManyRetriever reads the listed objects.
type ManyRetriever[T any] interface {
	RetrieveMany(ctx context.Context, guids []string) ([]T, error)
}

// FirstRetriever returns the first object matching a search. It fails with
// ErrNoMatch when the server returns nothing.
type FirstRetriever[Q, T any] interface {
	RetrieveFirst(ctx context.Context, req *Q) (*T, error)
}

// Updater replaces an object. Only fields set on item are sent.
type Updater[T any] interface {
	Update(ctx context.Context, guid string, item *T) (*T, error)
}

// Deleter deletes a single object.
type Deleter interface {
	Delete(ctx context.Context, guid string) error
}

// ForceDeleter deletes an object together with everything beneath it.
type ForceDeleter interface {
	ForceDelete(ctx context.Context, guid string) error
}

// MultiDeleter deletes objects in one bulk request. A nil slice is an
// ErrNilInput; an empty one is a no-op.
type MultiDeleter interface {
	DeleteMany(ctx context.Context, guids []string) error
}

// AllDeleter deletes every object in the scoped graph.
type AllDeleter interface {
	DeleteAll(ctx context.Context) error
}

// Enumerator returns the first page of objects with server defaults.
type Enumerator[T any] interface {
	Enumerate(ctx context.Context) (*EnumerationResult[T], error)
}

// QueryEnumerator returns a page of objects selected by a query. A nil query
// uses NewEnumerationQuery.
type QueryEnumerator[T any] interface {
	EnumerateWithQuery(ctx context.Context, query *EnumerationQuery) (*EnumerationResult[T], error)
}

// Searcher runs a search request.
type Searcher[Q, R any] interface {
	Search(ctx context.Context, req *Q) (*R, error)
}

// StatisticsRetriever reads statistics for one object or for all of them,
// keyed by GUID.
type StatisticsRetriever[S any] interface {
	Statistics(ctx context.Context, guid string) (*S, error)
	AllStatistics(ctx context.Context) (map[string]S, error)
}

// GEXFExporter exports a graph as GEXF XML.
type GEXFExporter interface {
	ExportGEXF(ctx context.Context, graphGUID string, includeData bool) (string, error)
}

// Resource clients.

// TenantsClient manages tenants.
type TenantsClient interface {
	Exister
	Creator[Tenant]
	Retriever[Tenant]
	AllRetriever[Tenant]
	ManyRetriever[Tenant]
	Updater[Tenant]
	Deleter
	ForceDeleter
	Enumerator[Tenant]
	QueryEnumerator[Tenant]
	StatisticsRetriever[TenantStatistics]
}

// GraphsClient manages graphs in the configured tenant.
type GraphsClient interface {
	Exister
	Creator[Graph]
	Retriever[Graph]
	AllRetriever[Graph]
	ManyRetriever[Graph]
	FirstRetriever[GraphSearchRequest, Graph]
	Updater[Graph]
	Deleter
	ForceDeleter
	Searcher[GraphSearchRequest, GraphSearchResult]
	Enumerator[Graph]
	QueryEnumerator[Graph]
	StatisticsRetriever[GraphStatistics]
	GEXFExporter

	// BatchExistence reports which of the requested objects exist.
	BatchExistence(ctx context.Context, graphGUID string, req *ExistenceRequest) (*ExistenceResult, error)
}

// NodesClient manages nodes in the scoped graph.
type NodesClient interface {
	Exister
	Creator[Node]
	MultiCreator[Node]
	Retriever[Node]
	AllRetriever[Node]
	ManyRetriever[Node]
	FirstRetriever[SearchRequest, Node]
	Updater[Node]
	Deleter
	MultiDeleter
	AllDeleter
	Searcher[SearchRequest, NodeSearchResult]
	Enumerator[Node]
	QueryEnumerator[Node]

	EdgesFrom(ctx context.Context, nodeGUID string) ([]Edge, error)
	EdgesTo(ctx context.Context, nodeGUID string) ([]Edge, error)
	Edges(ctx context.Context, nodeGUID string) ([]Edge, error)
	Parents(ctx context.Context, nodeGUID string) ([]Node, error)
	Children(ctx context.Context, nodeGUID string) ([]Node, error)
	Neighbors(ctx context.Context, nodeGUID string) ([]Node, error)
}

// EdgesClient manages edges in the scoped graph.
type EdgesClient interface {
	Exister
	Creator[Edge]
	MultiCreator[Edge]
	Retriever[Edge]
	AllRetriever[Edge]
	ManyRetriever[Edge]
	FirstRetriever[SearchRequest, Edge]
	Updater[Edge]
	Deleter
	MultiDeleter
	AllDeleter
	Searcher[SearchRequest, EdgeSearchResult]
	Enumerator[Edge]
	QueryEnumerator[Edge]

	// Between lists the edges from one node to another.
	Between(ctx context.Context, fromGUID, toGUID string) ([]Edge, error)
}

// TagsClient manages tags in the configured tenant.
type TagsClient interface {
	Exister
	Creator[Tag]
	MultiCreator[Tag]
	Retriever[Tag]
	AllRetriever[Tag]
	ManyRetriever[Tag]
	Updater[Tag]
	Deleter
	MultiDeleter
	Enumerator[Tag]
	QueryEnumerator[Tag]
}

// LabelsClient manages labels in the configured tenant.
type LabelsClient interface {
	Exister
	Creator[Label]
	MultiCreator[Label]
	Retriever[Label]
	AllRetriever[Label]
	ManyRetriever[Label]
	Updater[Label]
	Deleter
	MultiDeleter
	Enumerator[Label]
	QueryEnumerator[Label]
}

// VectorsClient manages vectors in the configured tenant.
type VectorsClient interface {
	Exister
	Creator[VectorMetadata]
	MultiCreator[VectorMetadata]
	Retriever[VectorMetadata]
	AllRetriever[VectorMetadata]
	ManyRetriever[VectorMetadata]
	Updater[VectorMetadata]
	Deleter
	MultiDeleter
	Enumerator[VectorMetadata]
	QueryEnumerator[VectorMetadata]

	// SearchVectors finds objects whose embeddings are close to
	// req.Embeddings.
	SearchVectors(ctx context.Context, req *VectorSearchRequest) ([]VectorSearchResult, error)
}

// UsersClient manages users in the configured tenant.
type UsersClient interface {
	Exister
	Creator[User]
	Retriever[User]
	AllRetriever[User]
	ManyRetriever[User]
	Updater[User]
	Deleter
	Enumerator[User]
	QueryEnumerator[User]
}

// CredentialsClient manages credentials in the configured tenant.
type CredentialsClient interface {
	Exister
	Creator[Credential]
	Retriever[Credential]
	AllRetriever[Credential]
	ManyRetriever[Credential]
	Updater[Credential]
	Deleter
	Enumerator[Credential]
	QueryEnumerator[Credential]
}

// VectorIndexClient manages the HNSW index of a graph.
type VectorIndexClient interface {
	Config(ctx context.Context, graphGUID string) (*VectorIndexConfig, error)
	Stats(ctx context.Context, graphGUID string) (*VectorIndexStatistics, error)
	Enable(ctx context.Context, graphGUID string, config *VectorIndexConfig) (*VectorIndexConfig, error)
	Rebuild(ctx context.Context, graphGUID string) error
	Delete(ctx context.Context, graphGUID string) error
}

// RoutesClient finds routes between nodes in the scoped graph.
type RoutesClient interface {
	Find(ctx context.Context, req *RouteRequest) (*RouteResult, error)
}

// AdminClient runs administrative operations. Results that the server
// reports as success or failure are collapsed to a boolean.
type AdminClient interface {
	CreateBackup(ctx context.Context, filename string) bool
	BackupExists(ctx context.Context, filename string) bool
	RetrieveBackup(ctx context.Context, filename string) (*Backup, error)
	ListBackups(ctx context.Context) ([]Backup, error)
	DeleteBackup(ctx context.Context, filename string) bool
	FlushToDisk(ctx context.Context) bool
}

// AuthenticationClient issues and inspects session tokens.
type AuthenticationClient interface {
	TenantsForEmail(ctx context.Context, email string) ([]Tenant, error)
	GenerateToken(ctx context.Context, email, password, tenantGUID string) (*AuthenticationToken, error)
	TokenDetails(ctx context.Context, token string) (*AuthenticationToken, error)
}

// Client is the main LiteGraph client.
type Client interface {
	Tenants() TenantsClient
	Graphs() GraphsClient
	Nodes() NodesClient
	Edges() EdgesClient
	Tags() TagsClient
	Labels() LabelsClient
	Vectors() VectorsClient
	Users() UsersClient
	Credentials() CredentialsClient
	VectorIndex() VectorIndexClient
	Routes() RoutesClient
	Admin() AdminClient
	Authentication() AuthenticationClient

	// WithGraph returns a view of the client scoped to another graph. The
	// view shares the connection pool.
	WithGraph(graphGUID string) Client

	TenantGUID() string
	GraphGUID() string

	// Close releases the connection pool. It is safe to call more than
	// once.
	Close() error
}
