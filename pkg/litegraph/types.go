package litegraph

import (
	"time"
)

// Tenant represents a LiteGraph tenant.
type Tenant struct {
	GUID          string    `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	Name          string    `json:"Name,omitempty"          yaml:"name,omitempty"`
	Active        *bool     `json:"Active,omitempty"        yaml:"active,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// TenantStatistics holds object counts for a tenant.
type TenantStatistics struct {
	Graphs  int `json:"Graphs"  yaml:"graphs"`
	Nodes   int `json:"Nodes"   yaml:"nodes"`
	Edges   int `json:"Edges"   yaml:"edges"`
	Labels  int `json:"Labels"  yaml:"labels"`
	Tags    int `json:"Tags"    yaml:"tags"`
	Vectors int `json:"Vectors" yaml:"vectors"`
}

// Graph represents a graph within a tenant.
type Graph struct {
	GUID          string                 `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string                 `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	Name          string                 `json:"Name,omitempty"          yaml:"name,omitempty"`
	Data          interface{}            `json:"Data,omitempty"          yaml:"data,omitempty"`
	Labels        []string               `json:"Labels,omitempty"        yaml:"labels,omitempty"`
	Tags          map[string]string      `json:"Tags,omitempty"          yaml:"tags,omitempty"`
	Vectors       []VectorMetadata       `json:"Vectors,omitempty"       yaml:"vectors,omitempty"`
	VectorIndex   *VectorIndexConfig     `json:"VectorIndex,omitempty"   yaml:"vector_index,omitempty"`
	Metadata      map[string]interface{} `json:"Metadata,omitempty"      yaml:"metadata,omitempty"`
	CreatedUtc    time.Time              `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time              `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// GraphStatistics holds object counts for a graph.
type GraphStatistics struct {
	Nodes   int `json:"Nodes"   yaml:"nodes"`
	Edges   int `json:"Edges"   yaml:"edges"`
	Labels  int `json:"Labels"  yaml:"labels"`
	Tags    int `json:"Tags"    yaml:"tags"`
	Vectors int `json:"Vectors" yaml:"vectors"`
}

// Node represents a node within a graph.
type Node struct {
	GUID          string            `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string            `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	GraphGUID     string            `json:"GraphGUID,omitempty"     yaml:"graph_guid,omitempty"`
	Name          string            `json:"Name,omitempty"          yaml:"name,omitempty"`
	Data          interface{}       `json:"Data,omitempty"          yaml:"data,omitempty"`
	Labels        []string          `json:"Labels,omitempty"        yaml:"labels,omitempty"`
	Tags          map[string]string `json:"Tags,omitempty"          yaml:"tags,omitempty"`
	Vectors       []VectorMetadata  `json:"Vectors,omitempty"       yaml:"vectors,omitempty"`
	CreatedUtc    time.Time         `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time         `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// Edge represents a directed edge between two nodes.
type Edge struct {
	GUID          string            `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string            `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	GraphGUID     string            `json:"GraphGUID,omitempty"     yaml:"graph_guid,omitempty"`
	Name          string            `json:"Name,omitempty"          yaml:"name,omitempty"`
	From          string            `json:"From,omitempty"          yaml:"from,omitempty"`
	To            string            `json:"To,omitempty"            yaml:"to,omitempty"`
	Cost          int               `json:"Cost,omitempty"          yaml:"cost,omitempty"          validate:"gte=0"`
	Data          interface{}       `json:"Data,omitempty"          yaml:"data,omitempty"`
	Labels        []string          `json:"Labels,omitempty"        yaml:"labels,omitempty"`
	Tags          map[string]string `json:"Tags,omitempty"          yaml:"tags,omitempty"`
	Vectors       []VectorMetadata  `json:"Vectors,omitempty"       yaml:"vectors,omitempty"`
	CreatedUtc    time.Time         `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time         `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// Tag is a key/value pair attached to a graph, node or edge.
type Tag struct {
	GUID          string    `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string    `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	GraphGUID     string    `json:"GraphGUID,omitempty"     yaml:"graph_guid,omitempty"`
	NodeGUID      string    `json:"NodeGUID,omitempty"      yaml:"node_guid,omitempty"`
	EdgeGUID      string    `json:"EdgeGUID,omitempty"      yaml:"edge_guid,omitempty"`
	Key           string    `json:"Key,omitempty"           yaml:"key,omitempty"`
	Value         string    `json:"Value,omitempty"         yaml:"value,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// Label is a string label attached to a graph, node or edge.
type Label struct {
	GUID          string    `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string    `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	GraphGUID     string    `json:"GraphGUID,omitempty"     yaml:"graph_guid,omitempty"`
	NodeGUID      string    `json:"NodeGUID,omitempty"      yaml:"node_guid,omitempty"`
	EdgeGUID      string    `json:"EdgeGUID,omitempty"      yaml:"edge_guid,omitempty"`
	Label         string    `json:"Label,omitempty"         yaml:"label,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// VectorMetadata is an embedding attached to a graph, node or edge.
type VectorMetadata struct {
	GUID           string    `json:"GUID,omitempty"           yaml:"guid,omitempty"`
	TenantGUID     string    `json:"TenantGUID,omitempty"     yaml:"tenant_guid,omitempty"`
	GraphGUID      string    `json:"GraphGUID,omitempty"      yaml:"graph_guid,omitempty"`
	NodeGUID       string    `json:"NodeGUID,omitempty"       yaml:"node_guid,omitempty"`
	EdgeGUID       string    `json:"EdgeGUID,omitempty"       yaml:"edge_guid,omitempty"`
	Model          string    `json:"Model,omitempty"          yaml:"model,omitempty"`
	Dimensionality int       `json:"Dimensionality,omitempty" yaml:"dimensionality,omitempty" validate:"gte=0"`
	Content        string    `json:"Content,omitempty"        yaml:"content,omitempty"`
	Vectors        []float64 `json:"Vectors,omitempty"        yaml:"vectors,omitempty"`
	CreatedUtc     time.Time `json:"CreatedUtc,omitzero"      yaml:"created_utc,omitempty"`
	LastUpdateUtc  time.Time `json:"LastUpdateUtc,omitzero"   yaml:"last_update_utc,omitempty"`
}

// User represents a user within a tenant.
type User struct {
	GUID          string    `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string    `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	FirstName     string    `json:"FirstName,omitempty"     yaml:"first_name,omitempty"`
	LastName      string    `json:"LastName,omitempty"      yaml:"last_name,omitempty"`
	Email         string    `json:"Email,omitempty"         yaml:"email,omitempty"         validate:"omitempty,email"`
	Password      string    `json:"Password,omitempty"      yaml:"-"`
	Active        *bool     `json:"Active,omitempty"        yaml:"active,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// Credential is a bearer token issued to a user.
type Credential struct {
	GUID          string    `json:"GUID,omitempty"          yaml:"guid,omitempty"`
	TenantGUID    string    `json:"TenantGUID,omitempty"    yaml:"tenant_guid,omitempty"`
	UserGUID      string    `json:"UserGUID,omitempty"      yaml:"user_guid,omitempty"`
	Name          string    `json:"Name,omitempty"          yaml:"name,omitempty"`
	BearerToken   string    `json:"BearerToken,omitempty"   yaml:"-"`
	Active        *bool     `json:"Active,omitempty"        yaml:"active,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
}

// Backup describes a server-side database backup file.
type Backup struct {
	Filename      string    `json:"Filename"                yaml:"filename"`
	Length        int64     `json:"Length,omitempty"        yaml:"length,omitempty"`
	MD5Hash       string    `json:"MD5Hash,omitempty"       yaml:"md5_hash,omitempty"`
	SHA1Hash      string    `json:"SHA1Hash,omitempty"      yaml:"sha1_hash,omitempty"`
	SHA256Hash    string    `json:"SHA256Hash,omitempty"    yaml:"sha256_hash,omitempty"`
	CreatedUtc    time.Time `json:"CreatedUtc,omitzero"     yaml:"created_utc,omitempty"`
	LastUpdateUtc time.Time `json:"LastUpdateUtc,omitzero"  yaml:"last_update_utc,omitempty"`
	LastAccessUtc time.Time `json:"LastAccessUtc,omitzero"  yaml:"last_access_utc,omitempty"`
	// Data holds the file contents when a single backup is retrieved.
	Data []byte `json:"Data,omitempty" yaml:"-"`
}

// AuthenticationToken is a session token issued by the server.
type AuthenticationToken struct {
	TimestampUtc  time.Time `json:"TimestampUtc,omitzero"  yaml:"timestamp_utc,omitempty"`
	ExpirationUtc time.Time `json:"ExpirationUtc,omitzero" yaml:"expiration_utc,omitempty"`
	IsExpired     bool      `json:"IsExpired"              yaml:"is_expired"`
	TenantGUID    string    `json:"TenantGUID,omitempty"   yaml:"tenant_guid,omitempty"`
	Tenant        *Tenant   `json:"Tenant,omitempty"       yaml:"tenant,omitempty"`
	UserGUID      string    `json:"UserGUID,omitempty"     yaml:"user_guid,omitempty"`
	User          *User     `json:"User,omitempty"         yaml:"user,omitempty"`
	Token         string    `json:"Token,omitempty"        yaml:"-"`
	Valid         bool      `json:"Valid"                  yaml:"valid"`
}

// Bool returns a pointer to b, for optional boolean fields such as Active.
func Bool(b bool) *bool {
	return &b
}
