// Package metrics exposes prometheus collectors for job executions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics counts job firings and records their durations.
// A nil *JobMetrics is valid and records nothing.
type JobMetrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewJobMetrics registers the job collectors with the given registerer
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	m := &JobMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "condoboard",
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Number of job firings by job name and outcome",
		}, []string{"job", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "condoboard",
			Subsystem: "jobs",
			Name:      "run_duration_seconds",
			Help:      "Job execution duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"job"}),
	}
	reg.MustRegister(m.runs, m.duration)
	return m
}

// ObserveRun records one finished firing of the named job
func (m *JobMetrics) ObserveRun(job string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.runs.WithLabelValues(job, status).Inc()
	m.duration.WithLabelValues(job).Observe(d.Seconds())
}

// ObserveSkip records a firing skipped by the single-flight guard
func (m *JobMetrics) ObserveSkip(job string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(job, "skipped").Inc()
}
