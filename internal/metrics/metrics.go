// Package metrics defines the Prometheus collectors exported by bookexplorer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookexplorer_http_requests_total",
		Help: "Total number of HTTP requests served by the API",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookexplorer_http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the API in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookexplorer_upstream_requests_total",
		Help: "Total number of requests sent to the catalog, by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookexplorer_upstream_request_duration_seconds",
		Help:    "Duration of catalog requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Doer is the request-executing half of *http.Client.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// InstrumentedDoer records upstream request counts and latencies.
type InstrumentedDoer struct {
	next  Doer
	label func(*http.Request) string
}

// InstrumentDoer wraps next; label maps a request to its endpoint name.
func InstrumentDoer(next Doer, label func(*http.Request) string) *InstrumentedDoer {
	return &InstrumentedDoer{next: next, label: label}
}

// Do executes the request and records its outcome: the status code, or
// "error" when no response was received.
func (d *InstrumentedDoer) Do(req *http.Request) (*http.Response, error) {
	endpoint := d.label(req)
	start := time.Now()

	resp, err := d.next.Do(req)

	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	outcome := "error"
	if err == nil {
		outcome = strconv.Itoa(resp.StatusCode)
	}
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()

	return resp, err
}
