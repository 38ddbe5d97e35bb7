// Package observability provides metrics and tracing instrumentation.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EdgeToggles counts relationship edge toggles by edge kind and outcome.
	EdgeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_edge_toggles_total",
		Help: "Total number of follow/like/save toggles by edge and outcome",
	}, []string{"edge", "outcome"})

	// CascadeDeletes counts post deletions that fanned out into comment and
	// reference cleanup.
	CascadeDeletes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glimpse_cascade_deletes_total",
		Help: "Total number of cascading post deletions",
	})

	// MediaUploads counts stored media objects by kind.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_media_uploads_total",
		Help: "Total number of uploaded media objects by kind",
	}, []string{"kind"})
)
