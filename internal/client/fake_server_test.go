package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

type object = map[string]interface{}

// recordedRequest is one request seen by the fake server.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Header http.Header
}

// fakeServer is a small in-memory LiteGraph server. Collections are keyed by
// their path below the version prefix, e.g. "tenants/t1/graphs".
type fakeServer struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string]map[string]object
	requests    []recordedRequest
	calls       atomic.Int32
}

// collection routes registered on the fake server, with the JSON key used
// for search results.
var fakeCollections = []struct {
	pattern   string
	searchKey string
	stats     bool
}{
	{pattern: "tenants", stats: true},
	{pattern: "tenants/{tenant}/graphs", searchKey: "Graphs", stats: true},
	{pattern: "tenants/{tenant}/graphs/{graph}/nodes", searchKey: "Nodes"},
	{pattern: "tenants/{tenant}/graphs/{graph}/edges", searchKey: "Edges"},
	{pattern: "tenants/{tenant}/tags"},
	{pattern: "tenants/{tenant}/labels"},
	{pattern: "tenants/{tenant}/vectors"},
	{pattern: "tenants/{tenant}/users"},
	{pattern: "tenants/{tenant}/credentials"},
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	f := &fakeServer{collections: map[string]map[string]object{}}
	mux := http.NewServeMux()

	for _, c := range fakeCollections {
		f.register(mux, c.pattern, c.searchKey, c.stats)
	}

	mux.HandleFunc("GET /v1.0/tenants/{tenant}/graphs/{guid}/export/gexf", f.exportGEXF)

	f.Server = httptest.NewServer(f.record(mux))
	t.Cleanup(f.Close)

	return f
}

// record logs every request and restores its body for the handler.
func (f *fakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		f.calls.Add(1)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
			Header: r.Header.Clone(),
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (f *fakeServer) register(mux *http.ServeMux, pattern, searchKey string, stats bool) {
	v1 := "/v1.0/" + pattern
	v2 := "/v2.0/" + pattern

	mux.HandleFunc("PUT "+v1, f.create)
	mux.HandleFunc("PUT "+v1+"/bulk", f.createBulk)
	mux.HandleFunc("GET "+v1, f.list)
	mux.HandleFunc("GET "+v1+"/{guid}", f.get)
	mux.HandleFunc("PUT "+v1+"/{guid}", f.update)
	mux.HandleFunc("DELETE "+v1+"/{guid}", f.remove)
	mux.HandleFunc("DELETE "+v1+"/bulk", f.removeBulk)
	mux.HandleFunc("GET "+v2, f.enumerate)
	mux.HandleFunc("POST "+v2, f.enumerate)

	if searchKey != "" {
		mux.HandleFunc("POST "+v1+"/first", f.first)
		mux.HandleFunc("POST "+v1+"/search", f.search(searchKey))
	}

	if strings.HasSuffix(pattern, "nodes") || strings.HasSuffix(pattern, "edges") {
		mux.HandleFunc("DELETE "+v1+"/all", f.removeAll)
	}

	if stats {
		mux.HandleFunc("GET "+v1+"/stats", f.allStats)
		mux.HandleFunc("GET "+v1+"/{guid}/stats", f.stats)
	}
}

// key returns the collection key of a request path, dropping the version
// and, when the request addresses one object, its GUID and any sub-path.
func collectionKey(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, "/")
	path = path[strings.Index(path, "/")+1:]

	if guid := r.PathValue("guid"); guid != "" {
		path = path[:strings.LastIndex(path, "/"+guid)]
	}

	for _, suffix := range []string{"/bulk", "/all", "/first", "/search", "/stats"} {
		path = strings.TrimSuffix(path, suffix)
	}

	return path
}

func (f *fakeServer) collection(key string) map[string]object {
	c, ok := f.collections[key]
	if !ok {
		c = map[string]object{}
		f.collections[key] = c
	}

	return c
}

// sorted returns a collection's objects ordered by creation.
func sorted(c map[string]object) []object {
	out := make([]object, 0, len(c))
	for _, o := range c {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]["CreatedUtc"]) < fmt.Sprint(out[j]["CreatedUtc"]) ||
			(out[i]["CreatedUtc"] == out[j]["CreatedUtc"] && fmt.Sprint(out[i]["GUID"]) < fmt.Sprint(out[j]["GUID"]))
	})

	return out
}

func (f *fakeServer) stamp(r *http.Request, o object) object {
	if guid, _ := o["GUID"].(string); guid == "" {
		o["GUID"] = uuid.NewString()
	}

	if tenant := r.PathValue("tenant"); tenant != "" {
		o["TenantGUID"] = tenant
	}

	if graph := r.PathValue("graph"); graph != "" {
		o["GraphGUID"] = graph
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := o["CreatedUtc"]; !ok {
		o["CreatedUtc"] = now
	}

	o["LastUpdateUtc"] = now

	return o
}

func (f *fakeServer) create(w http.ResponseWriter, r *http.Request) {
	var o object
	if !decodeBody(w, r, &o) {
		return
	}

	f.mu.Lock()
	o = f.stamp(r, o)
	f.collection(collectionKey(r))[o["GUID"].(string)] = o
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, o)
}

func (f *fakeServer) createBulk(w http.ResponseWriter, r *http.Request) {
	var items []object
	if !decodeBody(w, r, &items) {
		return
	}

	f.mu.Lock()
	c := f.collection(collectionKey(r))

	for i := range items {
		items[i] = f.stamp(r, items[i])
		c[items[i]["GUID"].(string)] = items[i]
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, items)
}

func (f *fakeServer) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.collection(collectionKey(r))

	guids := r.URL.Query().Get("guids")
	if guids == "" {
		writeJSON(w, http.StatusOK, sorted(c))

		return
	}

	out := []object{}

	for _, guid := range strings.Split(guids, ",") {
		if o, ok := c[guid]; ok {
			out = append(out, o)
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (f *fakeServer) lookup(w http.ResponseWriter, r *http.Request) (object, bool) {
	o, ok := f.collection(collectionKey(r))[r.PathValue("guid")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "")
	}

	return o, ok
}

func (f *fakeServer) get(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.lookup(w, r)
	if !ok {
		return
	}

	if _, incl := r.URL.Query()["incldata"]; !incl {
		o = withoutData(o)
	}

	writeJSON(w, http.StatusOK, o)
}

func (f *fakeServer) update(w http.ResponseWriter, r *http.Request) {
	var patch object
	if !decodeBody(w, r, &patch) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.lookup(w, r)
	if !ok {
		return
	}

	for k, v := range patch {
		if k != "GUID" {
			o[k] = v
		}
	}

	writeJSON(w, http.StatusOK, f.stamp(r, o))
}

func (f *fakeServer) remove(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lookup(w, r); !ok {
		return
	}

	key := collectionKey(r)
	guid := r.PathValue("guid")
	_, force := r.URL.Query()["force"]

	// Graphs and tenants with children need force.
	prefix := key + "/" + guid + "/"
	for child, c := range f.collections {
		if strings.HasPrefix(child, prefix) && len(c) > 0 {
			if !force {
				writeError(w, http.StatusConflict, "NotEmpty", "")

				return
			}

			delete(f.collections, child)
		}
	}

	delete(f.collection(key), guid)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeServer) removeBulk(w http.ResponseWriter, r *http.Request) {
	var guids []string
	if !decodeBody(w, r, &guids) {
		return
	}

	f.mu.Lock()
	c := f.collection(collectionKey(r))

	for _, guid := range guids {
		delete(c, guid)
	}
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeServer) removeAll(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	delete(f.collections, collectionKey(r))
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeServer) enumerate(w http.ResponseWriter, r *http.Request) {
	query := litegraph.NewEnumerationQuery()
	if r.Method == http.MethodPost && !decodeBody(w, r, query) {
		return
	}

	f.mu.Lock()
	all := sorted(f.collection(collectionKey(r)))
	f.mu.Unlock()

	skip := 0
	if query.ContinuationToken != "" {
		_, _ = fmt.Sscanf(query.ContinuationToken, "skip-%d", &skip)
	}

	all = all[min(skip, len(all)):]
	page := all[:min(query.MaxResults, len(all))]
	remaining := len(all) - len(page)

	result := object{
		"Success":          true,
		"MaxResults":       query.MaxResults,
		"EndOfResults":     remaining == 0,
		"TotalRecords":     skip + len(all),
		"RecordsRemaining": remaining,
		"Objects":          page,
	}

	if remaining > 0 {
		result["ContinuationToken"] = fmt.Sprintf("skip-%d", skip+len(page))
	}

	writeJSON(w, http.StatusOK, result)
}

func (f *fakeServer) first(w http.ResponseWriter, r *http.Request) {
	var filter object
	if !decodeBody(w, r, &filter) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range sorted(f.collection(collectionKey(r))) {
		if name, _ := filter["Name"].(string); name == "" || o["Name"] == name {
			writeJSON(w, http.StatusOK, o)

			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (f *fakeServer) search(resultKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter object
		if !decodeBody(w, r, &filter) {
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		out := []object{}

		for _, o := range sorted(f.collection(collectionKey(r))) {
			if name, _ := filter["Name"].(string); name == "" || o["Name"] == name {
				out = append(out, o)
			}
		}

		writeJSON(w, http.StatusOK, object{resultKey: out})
	}
}

func (f *fakeServer) countsFor(key string) object {
	return object{
		"Nodes":  len(f.collections[key+"/nodes"]),
		"Edges":  len(f.collections[key+"/edges"]),
		"Graphs": len(f.collections[key+"/graphs"]),
	}
}

func (f *fakeServer) stats(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.lookup(w, r); !ok {
		return
	}

	writeJSON(w, http.StatusOK, f.countsFor(collectionKey(r)+"/"+r.PathValue("guid")))
}

func (f *fakeServer) allStats(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := collectionKey(r)
	out := object{}

	for guid := range f.collection(key) {
		out[guid] = f.countsFor(key + "/" + guid)
	}

	writeJSON(w, http.StatusOK, out)
}

func (f *fakeServer) exportGEXF(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	g, ok := f.collection("tenants/" + r.PathValue("tenant") + "/graphs")[r.PathValue("guid")]
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "")

		return
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><gexf><graph label=%q/></gexf>`, g["Name"])
}

// seed stores objects directly, bypassing the API.
func (f *fakeServer) seed(key string, objects ...object) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.collection(key)
	for i, o := range objects {
		if _, ok := o["CreatedUtc"]; !ok {
			o["CreatedUtc"] = fmt.Sprintf("2024-01-01T00:00:%02dZ", i)
		}

		c[o["GUID"].(string)] = o
	}
}

func (f *fakeServer) callCount() int {
	return int(f.calls.Load())
}

func (f *fakeServer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.requests, "no request reached the server")

	return f.requests[len(f.requests)-1]
}

// client returns a Client for the fake server scoped to tenant and graph.
func (f *fakeServer) client(t *testing.T, tenant, graph string) *Client {
	t.Helper()

	c, err := New(t.Context(), &litegraph.Config{
		Endpoint:   f.URL,
		TenantGUID: tenant,
		GraphGUID:  graph,
		AccessKey:  "test-key",
		MaxRetries: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func withoutData(o object) object {
	out := make(object, len(o))
	for k, v := range o {
		if k != "Data" {
			out[k] = v
		}
	}

	return out
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "DeserializationError", err.Error())

		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	body := object{"Error": code}
	if description != "" {
		body["Description"] = description
	}

	writeJSON(w, status, body)
}

// newTestHTTPClient returns a transport for handler tests that talk to a
// hand-written httptest handler.
func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *internalhttp.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := internalhttp.NewClient(server.URL, nil, internalhttp.WithRetryConfig(1, 0))
	t.Cleanup(func() { _ = c.Close() })

	return c
}
