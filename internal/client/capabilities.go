package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// Capabilities are generic over the resource's data model, search request
// and result, and statistics types. Resource clients embed the capability
// values they support; the free functions hold the behavior so that one-off
// clients can call them directly.

func exists(ctx context.Context, r *resource, guid string) bool {
	ok, err := existsResult(ctx, r, guid)
	if err != nil {
		r.debug("existence check failed", map[string]interface{}{
			"resource": r.name(),
			"guid":     guid,
			"error":    err.Error(),
		})
	}

	return ok
}

func existsResult(ctx context.Context, r *resource, guid string) (bool, error) {
	err := requireGUID(guid)
	if err != nil {
		return false, err
	}

	path, err := r.v1([]string{guid})
	if err != nil {
		return false, err
	}

	_, err = r.send(ctx, "checking", &http.Request{Method: nethttp.MethodHead, Path: path})
	if err != nil {
		return false, err
	}

	return true, nil
}

func create[T any](ctx context.Context, r *resource, item *T) (*T, error) {
	if item == nil {
		return nil, litegraph.ErrNilInput
	}

	err := litegraph.Validate(item)
	if err != nil {
		return nil, err
	}

	path, err := r.v1(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "creating", &http.Request{Method: r.desc.Method(), Path: path, Body: item})
	if err != nil {
		return nil, err
	}

	return decode[T](resp, r.name())
}

func createMany[T any](ctx context.Context, r *resource, items []T) ([]T, error) {
	if items == nil {
		return nil, litegraph.ErrNilInput
	}

	if len(items) == 0 {
		return []T{}, nil
	}

	for i := range items {
		err := litegraph.Validate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	path, err := r.v1([]string{constants.SegmentBulk})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "creating", &http.Request{Method: r.desc.Method(), Path: path, Body: items})
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp, r.name())
}

func retrieveParams(opts *litegraph.RetrieveOptions) []endpoint.Param {
	if opts == nil {
		return nil
	}

	params := endpoint.FlagIf(constants.QueryIncludeData, opts.IncludeData)

	return append(params, endpoint.FlagIf(constants.QueryIncludeSubs, opts.IncludeSubordinates)...)
}

func retrieve[T any](ctx context.Context, r *resource, guid string, opts *litegraph.RetrieveOptions) (*T, error) {
	err := requireGUID(guid)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{guid}, retrieveParams(opts)...)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decode[T](resp, r.name())
}

func retrieveAll[T any](ctx context.Context, r *resource) ([]T, error) {
	path, err := r.v1(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "listing", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp, r.name())
}

func retrieveMany[T any](ctx context.Context, r *resource, guids []string) ([]T, error) {
	if guids == nil {
		return nil, litegraph.ErrNilInput
	}

	if len(guids) == 0 {
		return []T{}, nil
	}

	path, err := r.v1(nil, endpoint.Value(constants.QueryGUIDs, strings.Join(guids, ",")))
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp, r.name())
}

func retrieveFirst[Q, T any](ctx context.Context, r *resource, req *Q) (*T, error) {
	if req == nil {
		req = new(Q)
	}

	err := litegraph.Validate(req)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{constants.SegmentFirst})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting first", &http.Request{
		Method:  nethttp.MethodPost,
		Path:    path,
		Body:    req,
		Timeout: constants.RetrieveFirstTimeout,
	})
	if err != nil {
		return nil, err
	}

	if resp.Empty() {
		return nil, fmt.Errorf("getting first %s: %w", r.name(), litegraph.ErrNoMatch)
	}

	return decode[T](resp, r.name())
}

func update[T any](ctx context.Context, r *resource, guid string, item *T) (*T, error) {
	err := requireGUID(guid)
	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, litegraph.ErrNilInput
	}

	err = litegraph.Validate(item)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{guid})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "updating", &http.Request{Method: nethttp.MethodPut, Path: path, Body: item})
	if err != nil {
		return nil, err
	}

	return decode[T](resp, r.name())
}

func remove(ctx context.Context, r *resource, guid string, params ...endpoint.Param) error {
	err := requireGUID(guid)
	if err != nil {
		return err
	}

	path, err := r.v1([]string{guid}, params...)
	if err != nil {
		return err
	}

	_, err = r.send(ctx, "deleting", &http.Request{Method: nethttp.MethodDelete, Path: path})

	return err
}

func removeMany(ctx context.Context, r *resource, guids []string) error {
	if guids == nil {
		return litegraph.ErrNilInput
	}

	if len(guids) == 0 {
		return nil
	}

	path, err := r.v1([]string{constants.SegmentBulk})
	if err != nil {
		return err
	}

	_, err = r.send(ctx, "deleting", &http.Request{Method: nethttp.MethodDelete, Path: path, Body: guids})

	return err
}

func removeAll(ctx context.Context, r *resource) error {
	graph, err := r.normalizedGraph()
	if err != nil {
		return err
	}

	scoped := *r
	scoped.scope.GraphGUID = graph

	path, err := scoped.v1([]string{constants.SegmentAll})
	if err != nil {
		return err
	}

	_, err = r.send(ctx, "deleting all", &http.Request{Method: nethttp.MethodDelete, Path: path})

	return err
}

func enumerate[T any](ctx context.Context, r *resource) (*litegraph.EnumerationResult[T], error) {
	path, err := r.v2(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "enumerating", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.EnumerationResult[T]](resp, r.name()+" enumeration")
}

func enumerateWithQuery[T any](ctx context.Context, r *resource, query *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[T], error) {
	if query == nil {
		query = litegraph.NewEnumerationQuery()
	}

	err := query.Validate()
	if err != nil {
		return nil, err
	}

	path, err := r.v2(nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "enumerating", &http.Request{Method: nethttp.MethodPost, Path: path, Body: query})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.EnumerationResult[T]](resp, r.name()+" enumeration")
}

func search[Q, R any](ctx context.Context, r *resource, req *Q) (*R, error) {
	if req == nil {
		req = new(Q)
	}

	err := litegraph.Validate(req)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{constants.SegmentSearch})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "searching", &http.Request{Method: nethttp.MethodPost, Path: path, Body: req})
	if err != nil {
		return nil, err
	}

	return decode[R](resp, r.name()+" search result")
}

func statistics[S any](ctx context.Context, r *resource, guid string) (*S, error) {
	err := requireGUID(guid)
	if err != nil {
		return nil, err
	}

	path, err := r.v1([]string{guid, constants.SegmentStats})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting statistics for", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	return decode[S](resp, r.name()+" statistics")
}

func allStatistics[S any](ctx context.Context, r *resource) (map[string]S, error) {
	path, err := r.v1([]string{constants.SegmentStats})
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, "getting statistics for", &http.Request{Method: nethttp.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	stats := map[string]S{}
	if resp.Empty() {
		return stats, nil
	}

	err = json.Unmarshal(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statistics: %w", r.name(), err)
	}

	return stats, nil
}

// Capability values.

type exister struct{ r *resource }

// Exists reports whether the object exists. Every failure, including
// transport errors, reads as false.
func (c exister) Exists(ctx context.Context, guid string) bool {
	return exists(ctx, c.r, guid)
}

type creator[T any] struct{ r *resource }

// Create creates item. Only fields set on item are sent.
func (c creator[T]) Create(ctx context.Context, item *T) (*T, error) {
	return create[T](ctx, c.r, item)
}

type multiCreator[T any] struct{ r *resource }

// CreateMany creates items with one bulk request.
func (c multiCreator[T]) CreateMany(ctx context.Context, items []T) ([]T, error) {
	return createMany[T](ctx, c.r, items)
}

type retriever[T any] struct{ r *resource }

// Retrieve reads one object.
func (c retriever[T]) Retrieve(ctx context.Context, guid string, opts *litegraph.RetrieveOptions) (*T, error) {
	return retrieve[T](ctx, c.r, guid, opts)
}

type allRetriever[T any] struct{ r *resource }

// RetrieveAll lists every object in scope.
func (c allRetriever[T]) RetrieveAll(ctx context.Context) ([]T, error) {
	return retrieveAll[T](ctx, c.r)
}

type manyRetriever[T any] struct{ r *resource }

// RetrieveMany reads the listed objects.
func (c manyRetriever[T]) RetrieveMany(ctx context.Context, guids []string) ([]T, error) {
	return retrieveMany[T](ctx, c.r, guids)
}

type firstRetriever[Q, T any] struct{ r *resource }

// RetrieveFirst returns the first object matching req.
func (c firstRetriever[Q, T]) RetrieveFirst(ctx context.Context, req *Q) (*T, error) {
	return retrieveFirst[Q, T](ctx, c.r, req)
}

type updater[T any] struct{ r *resource }

// Update replaces the object with the fields set on item.
func (c updater[T]) Update(ctx context.Context, guid string, item *T) (*T, error) {
	return update[T](ctx, c.r, guid, item)
}

type deleter struct{ r *resource }

// Delete deletes one object.
func (c deleter) Delete(ctx context.Context, guid string) error {
	return remove(ctx, c.r, guid)
}

type forceDeleter struct{ r *resource }

// ForceDelete deletes the object and everything beneath it.
func (c forceDeleter) ForceDelete(ctx context.Context, guid string) error {
	return remove(ctx, c.r, guid, endpoint.Flag(constants.QueryForce))
}

type multiDeleter struct{ r *resource }

// DeleteMany deletes the listed objects with one bulk request.
func (c multiDeleter) DeleteMany(ctx context.Context, guids []string) error {
	return removeMany(ctx, c.r, guids)
}

type allDeleter struct{ r *resource }

// DeleteAll deletes every object of this kind in the scoped graph.
func (c allDeleter) DeleteAll(ctx context.Context) error {
	return removeAll(ctx, c.r)
}

type enumerator[T any] struct{ r *resource }

// Enumerate returns the first page with server defaults.
func (c enumerator[T]) Enumerate(ctx context.Context) (*litegraph.EnumerationResult[T], error) {
	return enumerate[T](ctx, c.r)
}

// EnumerateWithQuery returns the page selected by query.
func (c enumerator[T]) EnumerateWithQuery(ctx context.Context, query *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[T], error) {
	return enumerateWithQuery[T](ctx, c.r, query)
}

type searcher[Q, R any] struct{ r *resource }

// Search runs req.
func (c searcher[Q, R]) Search(ctx context.Context, req *Q) (*R, error) {
	return search[Q, R](ctx, c.r, req)
}

type statisticsRetriever[S any] struct{ r *resource }

// Statistics reads statistics for one object.
func (c statisticsRetriever[S]) Statistics(ctx context.Context, guid string) (*S, error) {
	return statistics[S](ctx, c.r, guid)
}

// AllStatistics reads statistics for every object, keyed by GUID.
func (c statisticsRetriever[S]) AllStatistics(ctx context.Context) (map[string]S, error) {
	return allStatistics[S](ctx, c.r)
}
