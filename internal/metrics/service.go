package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ScoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_scores_recorded_total",
			Help: "The total number of match scores recorded through manual entry.",
		}),
		ImportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_import_runs_total",
			Help: "The total number of result import runs.",
		}),
		CandidatesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_import_candidates_applied_total",
			Help: "The total number of imported result candidates merged into a fixture.",
		}),
		CandidatesUnmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tournament_import_candidates_unmatched_total",
			Help: "The total number of imported result candidates skipped because no team or fixture matched.",
		}),
		PersistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tournament_snapshot_persist_duration_seconds",
			Help:    "The duration of full tournament-list snapshot writes.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}

	reg.MustRegister(
		s.ScoresRecorded,
		s.ImportRuns,
		s.CandidatesApplied,
		s.CandidatesUnmatched,
		s.PersistDuration,
	)

	return s
}

func (s *Service) IncScoresRecorded() {
	s.ScoresRecorded.Inc()
}

func (s *Service) IncImportRuns() {
	s.ImportRuns.Inc()
}

func (s *Service) IncCandidatesApplied() {
	s.CandidatesApplied.Inc()
}

func (s *Service) IncCandidatesUnmatched() {
	s.CandidatesUnmatched.Inc()
}

func (s *Service) ObservePersistDuration(duration float64) {
	s.PersistDuration.Observe(duration)
}
