package reconcile

// Candidate is one loosely-structured result produced by an external source
// (OCR text or parsed HTML): two team-name strings and a raw score string.
type Candidate struct {
	Team1Name string `json:"team1Name"`
	Team2Name string `json:"team2Name"`
	ScoreText string `json:"scoreText"`
}

// Status says what happened to a single candidate.
type Status string

const (
	// StatusApplied means the candidate was merged into its fixture.
	StatusApplied Status = "applied"
	// StatusTeamUnresolved means at least one name did not resolve to a
	// known team within the distance threshold.
	StatusTeamUnresolved Status = "team-unresolved"
	// StatusNoFixture means both teams resolved but no match exists for the
	// pair.
	StatusNoFixture Status = "no-fixture"
	// StatusNoScore means the candidate carried no score text, so there is
	// no result to record.
	StatusNoScore Status = "no-score"
)

// Result is the per-candidate outcome report. Unapplied candidates are
// no-ops on the tournament; the report is how callers surface partial
// imports.
type Result struct {
	Candidate Candidate `json:"candidate"`
	Status    Status    `json:"status"`
	Team1ID   string    `json:"team1Id,omitempty"`
	Team2ID   string    `json:"team2Id,omitempty"`
	MatchID   string    `json:"matchId,omitempty"`
}
