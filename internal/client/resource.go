package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// Scope is the tenant and graph a client view addresses.
type Scope struct {
	TenantGUID string
	GraphGUID  string
}

// resource binds a descriptor to a transport and a scope. Every capability
// goes through it, so scope checks always run before a request is built.
type resource struct {
	http   *http.Client
	desc   endpoint.Descriptor
	scope  Scope
	logger litegraph.Logger
}

func newResource(httpClient *http.Client, desc endpoint.Descriptor, scope Scope, logger litegraph.Logger) *resource {
	return &resource{http: httpClient, desc: desc, scope: scope, logger: logger}
}

// scopeArgs returns the leading path arguments for the descriptor, or a
// validation error when a required GUID is missing.
func (r *resource) scopeArgs() ([]string, error) {
	args := make([]string, 0, 2)

	if r.desc.RequireTenant {
		if r.scope.TenantGUID == "" {
			return nil, litegraph.ErrTenantRequired
		}

		args = append(args, r.scope.TenantGUID)
	}

	if r.desc.RequireGraph {
		if r.scope.GraphGUID == "" {
			return nil, litegraph.ErrGraphRequired
		}

		args = append(args, r.scope.GraphGUID)
	}

	return args, nil
}

// v1 builds a v1.0 path below the scope.
func (r *resource) v1(rest []string, params ...endpoint.Param) (string, error) {
	args, err := r.scopeArgs()
	if err != nil {
		return "", err
	}

	return endpoint.V1(r.desc, append(args, rest...), params...), nil
}

// v2 builds a v2.0 path below the scope.
func (r *resource) v2(rest []string, params ...endpoint.Param) (string, error) {
	args, err := r.scopeArgs()
	if err != nil {
		return "", err
	}

	return endpoint.V2(r.desc, append(args, rest...), params...), nil
}

// normalizedGraph returns the scoped graph GUID in canonical lowercase form.
func (r *resource) normalizedGraph() (string, error) {
	if r.scope.GraphGUID == "" {
		return "", litegraph.ErrGraphRequired
	}

	id, err := uuid.Parse(r.scope.GraphGUID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", litegraph.ErrInvalidGraphGUID, r.scope.GraphGUID)
	}

	return strings.ToLower(id.String()), nil
}

func (r *resource) name() string {
	if r.desc.Name == "" {
		return "resource"
	}

	return r.desc.Name
}

func (r *resource) debug(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, fields)
	}
}

// send runs req and wraps any error with the operation name.
func (r *resource) send(ctx context.Context, op string, req *http.Request) (*http.Response, error) {
	resp, err := r.http.Do(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("%s %s: %w", op, r.name(), err)
	}

	return resp, nil
}

func requireGUID(guid string) error {
	if guid == "" {
		return litegraph.ErrGUIDRequired
	}

	return nil
}

// decode parses a JSON body into a new T. An empty body is an error.
func decode[T any](resp *http.Response, what string) (*T, error) {
	if resp.Empty() {
		return nil, fmt.Errorf("parsing %s: %w", what, litegraph.ErrUnexpectedEmpty)
	}

	var out T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &out, nil
}

// decodeList parses a JSON array. An empty body is an empty list.
func decodeList[T any](resp *http.Response, what string) ([]T, error) {
	if resp.Empty() {
		return []T{}, nil
	}

	var out []T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	if out == nil {
		out = []T{}
	}

	return out, nil
}
