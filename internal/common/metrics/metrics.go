// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	CreatorsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_creators_scored_total",
			Help: "Total number of creator scoring invocations",
		},
	)

	BriefGenerationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brief_generation_attempts",
			Help:    "Provider attempts consumed per successful brief generation",
			Buckets: []float64{1, 2, 3},
		},
	)

	BriefCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brief_cache_lookups_total",
			Help: "Brief cache lookups by outcome (hit, miss, skipped)",
		},
		[]string{"outcome"},
	)
)
