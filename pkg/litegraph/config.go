package litegraph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the settings of a LiteGraph client.
type Config struct {
	// Endpoint is the server base URL, e.g. "http://localhost:8701".
	Endpoint string
	// TenantGUID scopes every tenant-bound resource. Required by Configure.
	TenantGUID string
	// GraphGUID is the default graph for graph-bound resources.
	GraphGUID string
	// AccessKey is sent as "Authorization: Bearer <key>" when set.
	AccessKey string

	// Timeout bounds a single HTTP attempt. Defaults to 10s.
	Timeout time.Duration
	// MaxRetries is the total number of attempts for one logical request
	// when the connection fails. HTTP error statuses are never retried.
	// Defaults to 3.
	MaxRetries int

	UserAgent string
	Logger    Logger
	// Debug logs each request and response at debug level.
	Debug bool

	// Metrics registers transport counters and latency histograms when set.
	Metrics prometheus.Registerer
	// TracerProvider creates one client span per logical request when set.
	TracerProvider trace.TracerProvider
}
