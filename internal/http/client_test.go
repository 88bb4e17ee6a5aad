package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	lghttp "github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *MockTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string

	for _, entry := range l.logs {
		if entry["level"] == level {
			out = append(out, entry["msg"].(string))
		}
	}

	return out
}

// closedServerURL returns the address of a server that no longer listens, so
// every attempt fails at the connection level.
func closedServerURL(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := server.URL
	server.Close()

	return addr
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"Error": code, "Description": description})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1.0/tenants/t1/graphs", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode([]map[string]string{{"GUID": "g1", "Name": "graph"}})
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, &MockTokenManager{token: "test-token"})

		resp, err := client.Do(context.Background(), &lghttp.Request{Method: "GET", Path: "v1.0/tenants/t1/graphs"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "g1", result[0]["GUID"])
	})

	t.Run("no authorization header without access key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		for _, client := range []*lghttp.Client{
			lghttp.NewClient(server.URL, nil),
			lghttp.NewClient(server.URL, &MockTokenManager{}),
		} {
			_, err := client.Get(context.Background(), "v1.0/tenants", nil)
			require.NoError(t, err)
		}
	})

	t.Run("query parameters join an embedded query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1.0/tenants/t1/graphs/g1", request.URL.Path)
			assert.Equal(t, "force&extra=1", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL+"/", nil)

		_, err := client.Get(context.Background(), "v1.0/tenants/t1/graphs/g1?force", url.Values{"extra": []string{"1"}})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "node", body["Name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil)

		resp, err := client.Put(context.Background(), "v1.0/x", map[string]string{"Name": "node"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("known error code maps to kind with canned description", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeError(writer, http.StatusNotFound, "NotFound", "node missing")
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "v1.0/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.ErrorIs(t, err, litegraph.ErrNotFound)
		assert.ErrorIs(t, err, litegraph.ErrClient)

		var apiErr *litegraph.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "The requested resource was not found.", apiErr.Message)
		assert.Equal(t, "node missing", apiErr.ServerDescription)
	})

	t.Run("unknown error code maps to generic client error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeError(writer, http.StatusTeapot, "Brewing", "short and stout")
		}))
		defer server.Close()

		_, err := lghttp.NewClient(server.URL, nil).Get(context.Background(), "v1.0/x", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, litegraph.ErrClient)
		assert.NotErrorIs(t, err, litegraph.ErrNotFound)
		assert.Contains(t, err.Error(), "short and stout")
	})

	t.Run("unparseable JSON envelope maps to generic client error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("{not json"))
		}))
		defer server.Close()

		_, err := lghttp.NewClient(server.URL, nil).Get(context.Background(), "v1.0/x", nil)

		var apiErr *litegraph.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, litegraph.ErrClient, apiErr.Kind())
		assert.Equal(t, "{not json", apiErr.Message)
	})

	t.Run("non JSON error body is a transport error", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.Header().Set("Content-Type", "text/html")
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte("<html>down</html>"))
		}))
		defer server.Close()

		resp, err := lghttp.NewClient(server.URL, nil).Get(context.Background(), "v1.0/x", nil)
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.True(t, litegraph.IsTransport(err))
		assert.Contains(t, err.Error(), "non-JSON content")
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "user@example.com", request.Header.Get("x-email"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &lghttp.Request{
			Method:  "GET",
			Path:    "v1.0/token/tenants",
			Headers: map[string]string{"x-email": "user@example.com"},
		})
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := lghttp.NewClient(server.URL, nil, lghttp.WithLogger(logger), lghttp.WithDebug(true))

		_, err := client.Get(context.Background(), "v1.0/x", nil)
		require.NoError(t, err)

		debug := logger.messages("debug")
		assert.Contains(t, debug, "HTTP Request")
		assert.Contains(t, debug, "HTTP Response")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*lghttp.Client, context.Context) (*lghttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "HEAD",
			method: "HEAD",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Head(ctx, "/test")
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *lghttp.Client, ctx context.Context) (*lghttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := lghttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("connection failures exhaust max retries", func(t *testing.T) {
		t.Parallel()

		registry := prometheus.NewRegistry()
		metrics, err := lghttp.NewMetrics(registry)
		require.NoError(t, err)

		logger := &MockLogger{}
		client := lghttp.NewClient(closedServerURL(t), nil,
			lghttp.WithRetryConfig(3, 0),
			lghttp.WithMetrics(metrics),
			lghttp.WithLogger(logger),
		)

		resp, err := client.Get(context.Background(), "v1.0/tenants", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, litegraph.IsTransport(err))
		assert.Contains(t, err.Error(), "after 3 attempts")

		var transportErr *litegraph.TransportError

		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 3, transportErr.Attempts)

		count, err := testutil.GatherAndCount(registry, "litegraph_client_attempts_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.InDelta(t, 3, counterTotal(t, registry, "litegraph_client_attempts_total"), 0)
		assert.InDelta(t, 1, counterTotal(t, registry, "litegraph_client_requests_total"), 0)
		assert.Contains(t, logger.messages("warn"), "retrying request")
	})

	t.Run("single attempt when max retries is one", func(t *testing.T) {
		t.Parallel()

		_, err := lghttp.NewClient(closedServerURL(t), nil, lghttp.WithRetryConfig(1, 0)).
			Get(context.Background(), "v1.0/x", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 1 attempts")
	})

	t.Run("does not retry on server errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writeError(writer, http.StatusInternalServerError, "InternalError", "boom")
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil, lghttp.WithRetryConfig(3, 0))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.ErrorIs(t, err, litegraph.ErrServer)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writeError(writer, http.StatusBadRequest, "BadRequest", "")
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil, lghttp.WithRetryConfig(3, 0))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("per request timeout overrides default", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := lghttp.NewClient(server.URL, nil,
			lghttp.WithTimeout(20*time.Millisecond),
			lghttp.WithRetryConfig(1, 0),
		)

		_, err := client.Get(context.Background(), "/slow", nil)
		require.Error(t, err)
		assert.True(t, litegraph.IsTransport(err))

		resp, err := client.Do(context.Background(), &lghttp.Request{Method: "GET", Path: "/slow", Timeout: 5 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("cancelled context is not retried", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := lghttp.NewClient(closedServerURL(t), nil).Get(ctx, "/x", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, litegraph.IsTransport(err))
	})
}

func counterTotal(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	total := 0.0

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total
}

func TestClient_Close(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := lghttp.NewClient(server.URL, nil, lghttp.WithTracerProvider(noop.NewTracerProvider()))

	_, err := client.Get(context.Background(), "/x", nil)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	assert.True(t, client.Closed())

	_, err = client.Get(context.Background(), "/x", nil)
	assert.True(t, errors.Is(err, litegraph.ErrClientClosed))
}

func TestNewMetrics_SharedRegistry(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	first, err := lghttp.NewMetrics(registry)
	require.NoError(t, err)

	second, err := lghttp.NewMetrics(registry)
	require.NoError(t, err)
	assert.NotNil(t, first)
	assert.NotNil(t, second)
}

func TestResponse_Value(t *testing.T) {
	t.Parallel()

	assert.Nil(t, (&lghttp.Response{}).Value())
	assert.Equal(t, true, (&lghttp.Response{Body: []byte("true")}).Value())
	assert.Equal(t, []byte("plain"), (&lghttp.Response{Body: []byte("plain")}).Value())
	assert.True(t, (&lghttp.Response{Body: []byte(" null ")}).Empty())
	assert.False(t, (&lghttp.Response{Body: []byte("{}")}).Empty())
}
