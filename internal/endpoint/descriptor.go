// Package endpoint holds the resource descriptors of the LiteGraph REST API and
// the URL builder that turns a descriptor plus positional arguments into a
// versioned, relative request path.
package endpoint

import "net/http"

// Descriptor is the static description of one REST resource. Values are
// immutable; operations that need a different resource name use a different
// descriptor instead of changing this one.
type Descriptor struct {
	// Name is the collection segment, e.g. "nodes". Empty for
	// operations addressed directly below the version prefix.
	Name string
	// RequireTenant makes the first positional argument a tenant GUID.
	RequireTenant bool
	// RequireGraph makes the next positional argument a graph GUID.
	RequireGraph bool
	// CreateMethod is the verb used by Create. Defaults to PUT.
	CreateMethod string
}

// Method returns the create verb for the resource.
func (d Descriptor) Method() string {
	if d.CreateMethod == "" {
		return http.MethodPut
	}

	return d.CreateMethod
}

// Resource descriptors.
var (
	Tenants     = Descriptor{Name: "tenants"}
	Graphs      = Descriptor{Name: "graphs", RequireTenant: true}
	Nodes       = Descriptor{Name: "nodes", RequireTenant: true, RequireGraph: true}
	Edges       = Descriptor{Name: "edges", RequireTenant: true, RequireGraph: true}
	Routes      = Descriptor{Name: "routes", RequireTenant: true, RequireGraph: true}
	Tags        = Descriptor{Name: "tags", RequireTenant: true}
	Labels      = Descriptor{Name: "labels", RequireTenant: true}
	Vectors     = Descriptor{Name: "vectors", RequireTenant: true}
	Users       = Descriptor{Name: "users", RequireTenant: true}
	Credentials = Descriptor{Name: "credentials", RequireTenant: true}
	VectorIndex = Descriptor{Name: "vectorindex", RequireTenant: true, RequireGraph: true}
	Backups     = Descriptor{Name: "backups"}
	Token       = Descriptor{Name: "token"}

	// GraphVectors addresses vector search within one graph.
	GraphVectors = Descriptor{Name: "vectors", RequireTenant: true, RequireGraph: true}

	// Admin addresses operations directly below the version prefix.
	Admin = Descriptor{}
)
