package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the transport's Prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the transport collectors and registers them with reg.
// Collectors that are already registered are reused, so several clients can
// share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "litegraph",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Logical requests by method and final status code",
		},
		[]string{"method", "code"},
	))
	if err != nil {
		return nil, err
	}

	attempts, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "litegraph",
			Subsystem: "client",
			Name:      "attempts_total",
			Help:      "HTTP attempts, including connection retries",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "litegraph",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Logical request latency including retries",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, attempts: attempts, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("registering metrics: %w", err)
}

func (m *Metrics) observe(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	code := "error"
	if status != 0 {
		code = strconv.Itoa(status)
	}

	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) attempt(method string) {
	if m == nil {
		return
	}

	m.attempts.WithLabelValues(method).Inc()
}
