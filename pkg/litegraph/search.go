package litegraph

// SearchRequest filters nodes or edges within a graph. It is also the body
// of RetrieveFirst.
type SearchRequest struct {
	GraphGUID           string            `json:"GraphGUID,omitempty"  yaml:"graph_guid,omitempty"`
	Ordering            EnumerationOrder  `json:"Ordering,omitempty"   yaml:"ordering,omitempty"`
	MaxResults          int               `json:"MaxResults,omitempty" yaml:"max_results,omitempty"   validate:"omitempty,min=1,max=1000"`
	Skip                int               `json:"Skip,omitempty"       yaml:"skip,omitempty"          validate:"gte=0"`
	IncludeData         bool              `json:"IncludeData"          yaml:"include_data"`
	IncludeSubordinates bool              `json:"IncludeSubordinates"  yaml:"include_subordinates"`
	Name                string            `json:"Name,omitempty"       yaml:"name,omitempty"`
	Labels              []string          `json:"Labels,omitempty"     yaml:"labels,omitempty"`
	Tags                map[string]string `json:"Tags,omitempty"       yaml:"tags,omitempty"`
	Expr                *Expr             `json:"Expr,omitempty"       yaml:"expr,omitempty"`
}

// GraphSearchRequest filters graphs within a tenant.
type GraphSearchRequest struct {
	Ordering            EnumerationOrder  `json:"Ordering,omitempty"   yaml:"ordering,omitempty"`
	MaxResults          int               `json:"MaxResults,omitempty" yaml:"max_results,omitempty" validate:"omitempty,min=1,max=1000"`
	IncludeData         bool              `json:"IncludeData"          yaml:"include_data"`
	IncludeSubordinates bool              `json:"IncludeSubordinates"  yaml:"include_subordinates"`
	Name                string            `json:"Name,omitempty"       yaml:"name,omitempty"`
	Labels              []string          `json:"Labels,omitempty"     yaml:"labels,omitempty"`
	Tags                map[string]string `json:"Tags,omitempty"       yaml:"tags,omitempty"`
	Expr                *Expr             `json:"Expr,omitempty"       yaml:"expr,omitempty"`
}

// GraphSearchResult is the response of a graph search.
type GraphSearchResult struct {
	Graphs []Graph `json:"Graphs" yaml:"graphs"`
}

// NodeSearchResult is the response of a node search.
type NodeSearchResult struct {
	Nodes []Node `json:"Nodes" yaml:"nodes"`
}

// EdgeSearchResult is the response of an edge search.
type EdgeSearchResult struct {
	Edges  []Edge  `json:"Edges"            yaml:"edges"`
	Graphs []Graph `json:"Graphs,omitempty" yaml:"graphs,omitempty"`
	Nodes  []Node  `json:"Nodes,omitempty"  yaml:"nodes,omitempty"`
}

// EdgeBetween identifies an edge by its endpoints.
type EdgeBetween struct {
	From string `json:"From" yaml:"from" validate:"required"`
	To   string `json:"To"   yaml:"to"   validate:"required"`
}

// ExistenceRequest asks which of a set of objects exist in a graph.
type ExistenceRequest struct {
	Nodes        []string      `json:"Nodes,omitempty"        yaml:"nodes,omitempty"`
	Edges        []string      `json:"Edges,omitempty"        yaml:"edges,omitempty"`
	EdgesBetween []EdgeBetween `json:"EdgesBetween,omitempty" yaml:"edges_between,omitempty" validate:"dive"`
}

// Empty reports whether the request names nothing to check.
func (r *ExistenceRequest) Empty() bool {
	return len(r.Nodes) == 0 && len(r.Edges) == 0 && len(r.EdgesBetween) == 0
}

// ExistenceResult is the response of a batch existence check.
type ExistenceResult struct {
	ExistingNodes        []string      `json:"ExistingNodes,omitempty"        yaml:"existing_nodes,omitempty"`
	MissingNodes         []string      `json:"MissingNodes,omitempty"         yaml:"missing_nodes,omitempty"`
	ExistingEdges        []string      `json:"ExistingEdges,omitempty"        yaml:"existing_edges,omitempty"`
	MissingEdges         []string      `json:"MissingEdges,omitempty"         yaml:"missing_edges,omitempty"`
	ExistingEdgesBetween []EdgeBetween `json:"ExistingEdgesBetween,omitempty" yaml:"existing_edges_between,omitempty"`
	MissingEdgesBetween  []EdgeBetween `json:"MissingEdgesBetween,omitempty"  yaml:"missing_edges_between,omitempty"`
}

// RouteRequest asks for routes between two nodes.
type RouteRequest struct {
	Graph      string         `json:"Graph"                yaml:"graph"                 validate:"required"`
	From       string         `json:"From"                 yaml:"from"                  validate:"required"`
	To         string         `json:"To"                   yaml:"to"                    validate:"required"`
	EdgeFilter *SearchRequest `json:"EdgeFilter,omitempty" yaml:"edge_filter,omitempty"`
	NodeFilter *SearchRequest `json:"NodeFilter,omitempty" yaml:"node_filter,omitempty"`
}

// RouteDetail is a single route and its total cost.
type RouteDetail struct {
	TotalCost float64 `json:"TotalCost" yaml:"total_cost"`
	Edges     []Edge  `json:"Edges"     yaml:"edges"`
}

// RouteResult is the response of a route search.
type RouteResult struct {
	Timestamp Timestamp     `json:"Timestamp" yaml:"timestamp"`
	Routes    []RouteDetail `json:"Routes"    yaml:"routes"`
}
