package litegraph

import "time"

// VectorSearchDomain is the kind of object a vector search matches.
type VectorSearchDomain string

// Vector search domains.
const (
	VectorDomainGraph VectorSearchDomain = "Graph"
	VectorDomainNode  VectorSearchDomain = "Node"
	VectorDomainEdge  VectorSearchDomain = "Edge"
)

// VectorSearchType is the similarity function used by a vector search.
type VectorSearchType string

// Vector search types. The Euclidian spelling matches the server.
const (
	VectorSearchCosineDistance      VectorSearchType = "CosineDistance"
	VectorSearchCosineSimilarity    VectorSearchType = "CosineSimilarity"
	VectorSearchEuclidianDistance   VectorSearchType = "EuclidianDistance"
	VectorSearchEuclidianSimilarity VectorSearchType = "EuclidianSimilarity"
	VectorSearchDotProduct          VectorSearchType = "DotProduct"
)

// VectorSearchRequest searches embeddings within a tenant or graph.
type VectorSearchRequest struct {
	TenantGUID string             `json:"TenantGUID,omitempty" yaml:"tenant_guid,omitempty"`
	GraphGUID  string             `json:"GraphGUID,omitempty"  yaml:"graph_guid,omitempty"`
	Domain     VectorSearchDomain `json:"Domain"               yaml:"domain"                validate:"oneof=Graph Node Edge"`
	SearchType VectorSearchType   `json:"SearchType"           yaml:"search_type"           validate:"oneof=CosineDistance CosineSimilarity EuclidianDistance EuclidianSimilarity DotProduct"`
	Labels     []string           `json:"Labels,omitempty"     yaml:"labels,omitempty"`
	Tags       map[string]string  `json:"Tags,omitempty"       yaml:"tags,omitempty"`
	Expr       *Expr              `json:"Expr,omitempty"       yaml:"expr,omitempty"`
	Embeddings []float64          `json:"Embeddings"           yaml:"embeddings"            validate:"min=1"`
}

// VectorSearchResult is a single vector search match.
type VectorSearchResult struct {
	Score        *float64 `json:"Score,omitempty"        yaml:"score,omitempty"`
	Distance     *float64 `json:"Distance,omitempty"     yaml:"distance,omitempty"`
	InnerProduct *float64 `json:"InnerProduct,omitempty" yaml:"inner_product,omitempty"`
	Graph        *Graph   `json:"Graph,omitempty"        yaml:"graph,omitempty"`
	Node         *Node    `json:"Node,omitempty"         yaml:"node,omitempty"`
	Edge         *Edge    `json:"Edge,omitempty"         yaml:"edge,omitempty"`
}

// VectorIndexType selects the HNSW index backing.
type VectorIndexType string

// Vector index types.
const (
	VectorIndexHnswRAM    VectorIndexType = "HnswRam"
	VectorIndexHnswSqlite VectorIndexType = "HnswSqlite"
)

// Vector index defaults.
const (
	DefaultIndexM              = 16
	DefaultIndexEfConstruction = 200
	DefaultIndexEf             = 50
	DefaultIndexDistanceMetric = "Cosine"
)

// VectorIndexConfig is the HNSW index configuration of a graph.
type VectorIndexConfig struct {
	GUID                 string          `json:"GUID,omitempty"                 yaml:"guid,omitempty"`
	GraphGUID            string          `json:"GraphGUID,omitempty"            yaml:"graph_guid,omitempty"`
	VectorDimensionality int             `json:"VectorDimensionality"           yaml:"vector_dimensionality" validate:"gte=0"`
	VectorIndexType      VectorIndexType `json:"VectorIndexType,omitempty"      yaml:"vector_index_type,omitempty" validate:"omitempty,oneof=HnswRam HnswSqlite"`
	VectorIndexFile      string          `json:"VectorIndexFile,omitempty"      yaml:"vector_index_file,omitempty"`
	M                    int             `json:"M,omitempty"                    yaml:"m,omitempty"`
	EfConstruction       int             `json:"EfConstruction,omitempty"       yaml:"ef_construction,omitempty"`
	DefaultEf            int             `json:"DefaultEf,omitempty"            yaml:"default_ef,omitempty"`
	DistanceMetric       string          `json:"DistanceMetric,omitempty"       yaml:"distance_metric,omitempty"`
	VectorCount          int64           `json:"VectorCount,omitempty"          yaml:"vector_count,omitempty"`
	IndexFileSizeBytes   int64           `json:"IndexFileSizeBytes,omitempty"   yaml:"index_file_size_bytes,omitempty"`
	EstimatedMemoryBytes int64           `json:"EstimatedMemoryBytes,omitempty" yaml:"estimated_memory_bytes,omitempty"`
	LastRebuildUtc       *time.Time      `json:"LastRebuildUtc,omitempty"       yaml:"last_rebuild_utc,omitempty"`
	LastAddUtc           *time.Time      `json:"LastAddUtc,omitempty"           yaml:"last_add_utc,omitempty"`
	LastRemoveUtc        *time.Time      `json:"LastRemoveUtc,omitempty"        yaml:"last_remove_utc,omitempty"`
	LastSearchUtc        *time.Time      `json:"LastSearchUtc,omitempty"        yaml:"last_search_utc,omitempty"`
	IsLoaded             bool            `json:"IsLoaded"                       yaml:"is_loaded"`
}

// NewVectorIndexConfig returns an in-memory HNSW configuration with the
// server defaults.
func NewVectorIndexConfig(dimensionality int) *VectorIndexConfig {
	return &VectorIndexConfig{
		VectorDimensionality: dimensionality,
		VectorIndexType:      VectorIndexHnswRAM,
		M:                    DefaultIndexM,
		EfConstruction:       DefaultIndexEfConstruction,
		DefaultEf:            DefaultIndexEf,
		DistanceMetric:       DefaultIndexDistanceMetric,
	}
}

// VectorIndexStatistics describes the state of a graph's vector index.
type VectorIndexStatistics struct {
	VectorCount          int64      `json:"VectorCount"                    yaml:"vector_count"`
	Dimensions           int        `json:"Dimensions"                     yaml:"dimensions"`
	IndexType            string     `json:"IndexType,omitempty"            yaml:"index_type,omitempty"`
	M                    int        `json:"M"                              yaml:"m"`
	EfConstruction       int        `json:"EfConstruction"                 yaml:"ef_construction"`
	DefaultEf            int        `json:"DefaultEf"                      yaml:"default_ef"`
	IndexFile            string     `json:"IndexFile,omitempty"            yaml:"index_file,omitempty"`
	IndexFileSizeBytes   int64      `json:"IndexFileSizeBytes,omitempty"   yaml:"index_file_size_bytes,omitempty"`
	EstimatedMemoryBytes int64      `json:"EstimatedMemoryBytes,omitempty" yaml:"estimated_memory_bytes,omitempty"`
	LastRebuild          *time.Time `json:"LastRebuild,omitempty"          yaml:"last_rebuild,omitempty"`
	LastAdd              *time.Time `json:"LastAdd,omitempty"              yaml:"last_add,omitempty"`
	LastRemove           *time.Time `json:"LastRemove,omitempty"           yaml:"last_remove,omitempty"`
	LastSearch           *time.Time `json:"LastSearch,omitempty"           yaml:"last_search,omitempty"`
	IsLoaded             bool       `json:"IsLoaded"                       yaml:"is_loaded"`
	DistanceMetric       string     `json:"DistanceMetric,omitempty"       yaml:"distance_metric,omitempty"`
}
