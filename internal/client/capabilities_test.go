package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

const (
	testTenant = "00000000-0000-0000-0000-000000000000"
	testGraph  = "01010101-0101-0101-0101-010101010101"
)

func TestExists(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants/"+testTenant+"/tags", object{"GUID": "tag-1", "Key": "k", "Value": "v"})

	c := server.client(t, testTenant, "")
	ctx := context.Background()

	t.Run("present object is stable across calls", func(t *testing.T) {
		assert.True(t, c.Tags().Exists(ctx, "tag-1"))
		assert.True(t, c.Tags().Exists(ctx, "tag-1"))
	})

	t.Run("missing object is false", func(t *testing.T) {
		assert.False(t, c.Tags().Exists(ctx, "nope"))
		assert.False(t, c.Tags().Exists(ctx, "nope"))
	})

	t.Run("uses HEAD", func(t *testing.T) {
		c.Tags().Exists(ctx, "tag-1")

		req := server.lastRequest(t)
		assert.Equal(t, http.MethodHead, req.Method)
		assert.Equal(t, "/v1.0/tenants/"+testTenant+"/tags/tag-1", req.Path)
	})
}

func TestExists_NeverFails(t *testing.T) {
	t.Parallel()

	statuses := []int{http.StatusInternalServerError, http.StatusConflict, http.StatusUnauthorized}

	for _, status := range statuses {
		httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, status, "InternalError", "")
		})

		tags := NewTagsClient(httpClient, Scope{TenantGUID: testTenant}, nil)

		assert.False(t, tags.Exists(context.Background(), "tag-1"))
		assert.False(t, tags.Exists(context.Background(), "tag-1"))
	}

	// No server at all.
	gone := httptest.NewServer(http.NotFoundHandler())
	gone.Close()

	unreachable := internalhttp.NewClient(gone.URL, nil, internalhttp.WithRetryConfig(2, 0))
	tags := NewTagsClient(unreachable, Scope{TenantGUID: testTenant}, nil)
	assert.False(t, tags.Exists(context.Background(), "tag-1"))

	// Closed client.
	require.NoError(t, unreachable.Close())
	assert.False(t, tags.Exists(context.Background(), "tag-1"))
}

func TestCreateMany_ShortCircuits(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	c := server.client(t, testTenant, testGraph)
	ctx := context.Background()

	nodes, err := c.Nodes().CreateMany(ctx, []litegraph.Node{})
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)

	err = c.Nodes().DeleteMany(ctx, []string{})
	require.NoError(t, err)

	_, err = c.Nodes().CreateMany(ctx, nil)
	require.ErrorIs(t, err, litegraph.ErrNilInput)
	assert.True(t, litegraph.IsValidation(err))

	err = c.Nodes().DeleteMany(ctx, nil)
	require.ErrorIs(t, err, litegraph.ErrNilInput)

	assert.Equal(t, 0, server.callCount())
}

func TestCreateMany(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	c := server.client(t, testTenant, testGraph)
	ctx := context.Background()

	nodes, err := c.Nodes().CreateMany(ctx, []litegraph.Node{{Name: "a"}, {Name: "b"}})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.NotEmpty(t, nodes[0].GUID)
	assert.Equal(t, testGraph, nodes[1].GraphGUID)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/v1.0/tenants/"+testTenant+"/graphs/"+testGraph+"/nodes/bulk", req.Path)

	var sent []map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Len(t, sent, 2)

	err = c.Nodes().DeleteMany(ctx, []string{nodes[0].GUID})
	require.NoError(t, err)

	req = server.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.JSONEq(t, `["`+nodes[0].GUID+`"]`, string(req.Body))

	all, err := c.Nodes().RetrieveAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, nodes[1].GUID, all[0].GUID)
}

//nolint:funlen
func TestScopeValidation(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	noTenant := server.client(t, "", "")
	noGraph := server.client(t, testTenant, "")
	ctx := context.Background()

	tenantBound := []struct {
		name string
		call func() error
	}{
		{"graphs create", func() error { _, err := noTenant.Graphs().Create(ctx, &litegraph.Graph{Name: "g"}); return err }},
		{"graphs retrieve", func() error { _, err := noTenant.Graphs().Retrieve(ctx, "g", nil); return err }},
		{"graphs enumerate", func() error { _, err := noTenant.Graphs().Enumerate(ctx); return err }},
		{"graphs stats", func() error { _, err := noTenant.Graphs().AllStatistics(ctx); return err }},
		{"tags list", func() error { _, err := noTenant.Tags().RetrieveAll(ctx); return err }},
		{"labels delete", func() error { return noTenant.Labels().Delete(ctx, "l") }},
		{"users update", func() error { _, err := noTenant.Users().Update(ctx, "u", &litegraph.User{}); return err }},
		{"credentials many", func() error { _, err := noTenant.Credentials().RetrieveMany(ctx, []string{"c"}); return err }},
		{"vectors create", func() error { _, err := noTenant.Vectors().Create(ctx, &litegraph.VectorMetadata{}); return err }},
	}

	for _, tc := range tenantBound {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, litegraph.ErrTenantRequired)
			assert.True(t, litegraph.IsValidation(err))
		})
	}

	graphBound := []struct {
		name string
		call func() error
	}{
		{"nodes create", func() error { _, err := noGraph.Nodes().Create(ctx, &litegraph.Node{Name: "n"}); return err }},
		{"nodes search", func() error { _, err := noGraph.Nodes().Search(ctx, nil); return err }},
		{"edges first", func() error { _, err := noGraph.Edges().RetrieveFirst(ctx, nil); return err }},
		{"edges delete all", func() error { return noGraph.Edges().DeleteAll(ctx) }},
		{"nodes parents", func() error { _, err := noGraph.Nodes().Parents(ctx, "n"); return err }},
		{"routes", func() error {
			_, err := noGraph.Routes().Find(ctx, &litegraph.RouteRequest{From: "a", To: "b"})
			return err
		}},
		{"vector index", func() error { _, err := noGraph.VectorIndex().Config(ctx, ""); return err }},
		{"export", func() error { _, err := noGraph.Graphs().ExportGEXF(ctx, "", false); return err }},
	}

	for _, tc := range graphBound {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, litegraph.ErrGraphRequired)
		})
	}

	assert.Equal(t, 0, server.callCount())
}

func TestDeleteAll(t *testing.T) {
	t.Parallel()

	t.Run("rejects a malformed graph GUID locally", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t)
		c := server.client(t, testTenant, "not-a-uuid")

		err := c.Nodes().DeleteAll(context.Background())
		require.ErrorIs(t, err, litegraph.ErrInvalidGraphGUID)
		assert.Equal(t, 0, server.callCount())
	})

	t.Run("normalizes the graph GUID", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t)
		upper := "ABCDEFAB-0000-0000-0000-000000000001"
		c := server.client(t, testTenant, upper)

		err := c.Edges().DeleteAll(context.Background())
		require.NoError(t, err)

		req := server.lastRequest(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/v1.0/tenants/"+testTenant+"/graphs/abcdefab-0000-0000-0000-000000000001/edges/all", req.Path)
	})
}

//nolint:funlen
func TestEnumerateWithQuery(t *testing.T) {
	t.Parallel()

	t.Run("bounds are checked locally", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t)
		c := server.client(t, testTenant, testGraph)

		for _, n := range []int{0, 1001} {
			_, err := c.Nodes().EnumerateWithQuery(context.Background(), litegraph.NewEnumerationQuery().WithMaxResults(n))

			var verr *litegraph.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "EnumerationQuery", verr.Model)
		}

		assert.Equal(t, 0, server.callCount())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var body map[string]interface{}

		httpClient := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2.0/tenants/"+testTenant+"/graphs/"+testGraph+"/nodes", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"Success": true,
				"MaxResults": 10,
				"ContinuationToken": "next-page",
				"EndOfResults": false,
				"TotalRecords": 42,
				"RecordsRemaining": 32,
				"Objects": [{"GUID": "n1"}, {"GUID": "n2"}, {"GUID": "n3"}]
			}`))
		})

		nodes := NewNodesClient(httpClient, Scope{TenantGUID: testTenant, GraphGUID: testGraph}, nil)

		query := litegraph.NewEnumerationQuery().WithMaxResults(10).WithLabels("a").WithTag("k", "v")

		result, err := nodes.EnumerateWithQuery(context.Background(), query)
		require.NoError(t, err)

		assert.EqualValues(t, 10, body["MaxResults"])
		assert.Equal(t, []interface{}{"a"}, body["Labels"])
		assert.Equal(t, map[string]interface{}{"k": "v"}, body["Tags"])

		assert.EqualValues(t, 42, result.TotalRecords)
		assert.Equal(t, "next-page", result.ContinuationToken)
		assert.Len(t, result.Objects, 3)
	})

	t.Run("pages through the fake server", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t)
		key := "tenants/" + testTenant + "/labels"
		server.seed(key,
			object{"GUID": "l1", "Label": "a"},
			object{"GUID": "l2", "Label": "b"},
			object{"GUID": "l3", "Label": "c"},
		)

		c := server.client(t, testTenant, "")
		ctx := context.Background()

		first, err := c.Labels().EnumerateWithQuery(ctx, litegraph.NewEnumerationQuery().WithMaxResults(2))
		require.NoError(t, err)
		require.Len(t, first.Objects, 2)
		assert.False(t, first.EndOfResults)
		require.NotEmpty(t, first.ContinuationToken)

		rest, err := c.Labels().EnumerateWithQuery(ctx,
			litegraph.NewEnumerationQuery().WithMaxResults(2).WithContinuationToken(first.ContinuationToken))
		require.NoError(t, err)
		require.Len(t, rest.Objects, 1)
		assert.Equal(t, "l3", rest.Objects[0].GUID)
		assert.True(t, rest.EndOfResults)

		page, err := c.Labels().Enumerate(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, page.TotalRecords)
		assert.Equal(t, http.MethodGet, server.lastRequest(t).Method)
	})
}

func TestRetrieve_Flags(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants/"+testTenant+"/graphs/"+testGraph+"/nodes",
		object{"GUID": "n1", "Name": "one", "Data": map[string]interface{}{"x": 1.0}})

	c := server.client(t, testTenant, testGraph)
	ctx := context.Background()

	plain, err := c.Nodes().Retrieve(ctx, "n1", nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Data)
	assert.Empty(t, server.lastRequest(t).Query)

	full, err := c.Nodes().Retrieve(ctx, "n1", &litegraph.RetrieveOptions{IncludeData: true, IncludeSubordinates: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"x": 1.0}, full.Data)
	assert.Equal(t, "incldata&inclsub", server.lastRequest(t).Query)

	_, err = c.Nodes().Retrieve(ctx, "missing", nil)
	require.Error(t, err)
	assert.True(t, litegraph.IsNotFound(err))

	_, err = c.Nodes().Retrieve(ctx, "", nil)
	require.ErrorIs(t, err, litegraph.ErrGUIDRequired)
}

func TestRetrieveMany(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants",
		object{"GUID": "t1", "Name": "one"},
		object{"GUID": "t2", "Name": "two"},
		object{"GUID": "t3", "Name": "three"},
	)

	c := server.client(t, "", "")
	ctx := context.Background()

	tenants, err := c.Tenants().RetrieveMany(ctx, []string{"t1", "t3"})
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "guids=t1%2Ct3", server.lastRequest(t).Query)

	calls := server.callCount()

	empty, err := c.Tenants().RetrieveMany(ctx, []string{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = c.Tenants().RetrieveMany(ctx, nil)
	require.ErrorIs(t, err, litegraph.ErrNilInput)
	assert.Equal(t, calls, server.callCount())
}

func TestRetrieveFirst(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants/"+testTenant+"/graphs",
		object{"GUID": "g1", "Name": "first"},
		object{"GUID": "g2", "Name": "second"},
	)

	c := server.client(t, testTenant, "")
	ctx := context.Background()

	graph, err := c.Graphs().RetrieveFirst(ctx, &litegraph.GraphSearchRequest{Name: "second"})
	require.NoError(t, err)
	assert.Equal(t, "g2", graph.GUID)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1.0/tenants/"+testTenant+"/graphs/first", req.Path)

	_, err = c.Graphs().RetrieveFirst(ctx, &litegraph.GraphSearchRequest{Name: "none"})
	require.ErrorIs(t, err, litegraph.ErrNoMatch)
}

func TestUpdate_SendsOnlySetFields(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants/"+testTenant+"/graphs/"+testGraph+"/edges",
		object{"GUID": "e1", "Name": "old", "From": "a", "To": "b", "Cost": 3})

	c := server.client(t, testTenant, testGraph)

	edge, err := c.Edges().Update(context.Background(), "e1", &litegraph.Edge{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", edge.Name)
	assert.Equal(t, "a", edge.From)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(server.lastRequest(t).Body, &sent))
	assert.Equal(t, map[string]interface{}{"Name": "new"}, sent)
}

func TestValidation_BeforeNetwork(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	c := server.client(t, testTenant, testGraph)
	ctx := context.Background()

	_, err := c.Edges().Create(ctx, &litegraph.Edge{From: "a", To: "b", Cost: -1})

	var verr *litegraph.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Edge", verr.Model)

	_, err = c.Nodes().Search(ctx, &litegraph.SearchRequest{MaxResults: 5000})
	require.ErrorAs(t, err, &verr)

	_, err = c.Users().Create(ctx, &litegraph.User{Email: "not-an-email"})
	require.ErrorAs(t, err, &verr)

	_, err = c.Nodes().Create(ctx, nil)
	require.ErrorIs(t, err, litegraph.ErrNilInput)

	assert.Equal(t, 0, server.callCount())
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	base := "tenants/" + testTenant + "/graphs"
	server.seed(base, object{"GUID": "g1"}, object{"GUID": "g2"})
	server.seed(base+"/g1/nodes", object{"GUID": "n1"}, object{"GUID": "n2"})

	c := server.client(t, testTenant, "")
	ctx := context.Background()

	one, err := c.Graphs().Statistics(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 2, one.Nodes)

	all, err := c.Graphs().AllStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all["g1"].Nodes)
	assert.Equal(t, 0, all["g2"].Nodes)
	assert.Equal(t, "/v1.0/tenants/"+testTenant+"/graphs/stats", server.lastRequest(t).Path)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t)
	server.seed("tenants/"+testTenant+"/graphs/"+testGraph+"/nodes",
		object{"GUID": "n1", "Name": "alpha"},
		object{"GUID": "n2", "Name": "beta"},
	)

	c := server.client(t, testTenant, testGraph)

	result, err := c.Nodes().Search(context.Background(), &litegraph.SearchRequest{Name: "beta"})
	require.NoError(t, err)
	require.Len(t, result.Nodes, 1)
	assert.Equal(t, "n2", result.Nodes[0].GUID)

	req := server.lastRequest(t)
	assert.Equal(t, "/v1.0/tenants/"+testTenant+"/graphs/"+testGraph+"/nodes/search", req.Path)
}
