package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	ScoresRecorded      prometheus.Counter
	ImportRuns          prometheus.Counter
	CandidatesApplied   prometheus.Counter
	CandidatesUnmatched prometheus.Counter
	PersistDuration     prometheus.Histogram
}
