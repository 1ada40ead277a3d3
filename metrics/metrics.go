// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// No video, playlist or channel ids in labels.

var (
	// RequestsTotal counts served API requests by api and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytchecklist_requests_total",
		Help: "Total number of served API requests, by api and status code.",
	}, []string{"api", "code"})

	// ProviderCallsTotal counts YouTube Data API calls by call and outcome.
	ProviderCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytchecklist_provider_calls_total",
		Help: "Total number of metadata provider calls, by call and outcome (ok/not_found/error).",
	}, []string{"call", "outcome"})

	// PlaylistPages observes how many item pages a playlist build fetched.
	PlaylistPages = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ytchecklist_playlist_pages",
		Help:    "Number of playlist item pages fetched per playlist build.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
	})

	// DroppedItemsTotal counts playlist items whose video could not be resolved.
	DroppedItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ytchecklist_dropped_items_total",
		Help: "Total number of playlist items dropped because their video was not returned.",
	})
)
