package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	scoresRecorded      int
	importRuns          int
	candidatesApplied   int
	candidatesUnmatched int
	persistDurations    []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		persistDurations: make([]float64, 0),
	}
}

func (m *Mock) IncScoresRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoresRecorded++
}

func (m *Mock) IncImportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importRuns++
}

func (m *Mock) IncCandidatesApplied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidatesApplied++
}

func (m *Mock) IncCandidatesUnmatched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidatesUnmatched++
}

func (m *Mock) ObservePersistDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistDurations = append(m.persistDurations, duration)
}

// ScoresRecorded returns the number of times IncScoresRecorded was called.
func (m *Mock) ScoresRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoresRecorded
}

// ImportRuns returns the number of times IncImportRuns was called.
func (m *Mock) ImportRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.importRuns
}

// CandidatesApplied returns the number of times IncCandidatesApplied was called.
func (m *Mock) CandidatesApplied() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.candidatesApplied
}

// CandidatesUnmatched returns the number of times IncCandidatesUnmatched was called.
func (m *Mock) CandidatesUnmatched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.candidatesUnmatched
}
