// Package reconcile merges loosely-structured external results (OCR or HTML
// imports) into the canonical tournament state: fuzzy team-name resolution,
// fixture lookup regardless of home/away orientation, and wholesale score
// replacement on the matched fixture.
package reconcile

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/B21v/sports-tournament-manager/internal/metrics"
	"github.com/B21v/sports-tournament-manager/internal/score"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// Engine applies candidate results to tournament snapshots.
type Engine struct {
	metrics metrics.Metrics
}

// New creates a new Engine.
func New(m metrics.Metrics) *Engine {
	return &Engine{metrics: m}
}

// Apply resolves each candidate against the tournament and merges the ones
// that match into a new snapshot; the input is never mutated. Candidates that
// fail to resolve are skipped and reported, never fatal. Re-applying the same
// candidates overwrites the same fixtures with the same values, so imports
// are safe to retry.
func (e *Engine) Apply(t tournament.Tournament, candidates []Candidate) (tournament.Tournament, []Result) {
	next := t.Clone()
	e.metrics.IncImportRuns()

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		res := e.applyOne(&next, c)
		results = append(results, res)
	}
	return next, results
}

func (e *Engine) applyOne(t *tournament.Tournament, c Candidate) Result {
	res := Result{Candidate: c}

	// An empty score would parse to a fabricated completed 0-0 set; a
	// candidate without one has no result to record.
	if strings.TrimSpace(c.ScoreText) == "" {
		log.Warn("Skipping candidate, no score text",
			"team1", c.Team1Name, "team2", c.Team2Name)
		e.metrics.IncCandidatesUnmatched()
		res.Status = StatusNoScore
		return res
	}

	team1, ok1 := resolveTeam(c.Team1Name, t.Teams)
	team2, ok2 := resolveTeam(c.Team2Name, t.Teams)
	if !ok1 || !ok2 || team1.ID == team2.ID {
		log.Warn("Skipping candidate, team name did not resolve",
			"team1", c.Team1Name, "team2", c.Team2Name)
		e.metrics.IncCandidatesUnmatched()
		res.Status = StatusTeamUnresolved
		return res
	}
	res.Team1ID = team1.ID
	res.Team2ID = team2.ID

	idx := tournament.MatchIndexBetween(t.Matches, team1.ID, team2.ID)
	if idx < 0 {
		log.Warn("Skipping candidate, no fixture for team pair",
			"team1", team1.Name, "team2", team2.Name)
		e.metrics.IncCandidatesUnmatched()
		res.Status = StatusNoFixture
		return res
	}
	m := &t.Matches[idx]

	parsed := score.Parse(c.ScoreText, score.Home)
	// The import order of team1/team2 may not match the fixture's fixed
	// home/away assignment; swap every set when team1 is the away side so
	// the stored score keeps the fixture orientation.
	if m.HomeTeamID != team1.ID {
		for i, set := range parsed.Sets {
			parsed.Sets[i] = tournament.SetScore{
				HomeScore: set.AwayScore,
				AwayScore: set.HomeScore,
			}
		}
	}
	m.Score = parsed
	m.IsCompleted = parsed.IsCompleted

	log.Info("Merged imported result",
		"matchID", m.ID, "team1", team1.Name, "team2", team2.Name, "score", c.ScoreText)
	e.metrics.IncCandidatesApplied()
	res.Status = StatusApplied
	res.MatchID = m.ID
	return res
}
