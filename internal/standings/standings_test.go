package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/B21v/sports-tournament-manager/internal/score"
	"github.com/B21v/sports-tournament-manager/internal/standings"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

var (
	alpha = tournament.Team{ID: "alpha", Name: "Alpha"}
	beta  = tournament.Team{ID: "beta", Name: "Beta"}
	gamma = tournament.Team{ID: "gamma", Name: "Gamma"}
)

func completedMatch(id, homeID, awayID, scoreText string) tournament.Match {
	return tournament.Match{
		ID:          id,
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		Score:       score.Parse(scoreText, score.Home),
		IsCompleted: true,
	}
}

// The three-team example: Alpha beats Beta 6-4, 6-3; Gamma beats Alpha
// 6-4, 6-4 (entered from Alpha's side); Beta beats Gamma 6-2, 3-6, 7-5.
func exampleTournament() ([]tournament.Team, []tournament.Match) {
	teams := []tournament.Team{alpha, beta, gamma}
	matches := []tournament.Match{
		completedMatch("m1", "alpha", "beta", "6-4, 6-3"),
		completedMatch("m2", "alpha", "gamma", "4-6, 4-6"),
		completedMatch("m3", "beta", "gamma", "6-2, 3-6, 7-5"),
	}
	return teams, matches
}

func TestComputeExampleTable(t *testing.T) {
	teams, matches := exampleTournament()
	stats := standings.Compute(teams, matches)
	require.Len(t, stats, 3)

	// Everyone is on 2 points; set difference then sets won decide:
	// Gamma +1, Alpha 0, Beta -1.
	assert.Equal(t, "gamma", stats[0].Team.ID)
	assert.Equal(t, "alpha", stats[1].Team.ID)
	assert.Equal(t, "beta", stats[2].Team.ID)

	expected := map[string]standings.TeamStats{
		"alpha": {Team: alpha, Played: 2, Won: 1, Lost: 1, SetsFor: 2, SetsAgainst: 2, Points: 2},
		"beta":  {Team: beta, Played: 2, Won: 1, Lost: 1, SetsFor: 2, SetsAgainst: 3, Points: 2},
		"gamma": {Team: gamma, Played: 2, Won: 1, Lost: 1, SetsFor: 3, SetsAgainst: 2, Points: 2},
	}
	for _, stat := range stats {
		assert.Equal(t, expected[stat.Team.ID], stat)
	}
}

func TestComputeOutcomeIsSetsWonNotGameTotal(t *testing.T) {
	// Beta takes more games overall (16 vs 14) but Alpha takes more sets.
	teams := []tournament.Team{alpha, beta}
	matches := []tournament.Match{
		completedMatch("m1", "alpha", "beta", "7-5, 0-6, 7-5"),
	}
	stats := standings.Compute(teams, matches)

	assert.Equal(t, "alpha", stats[0].Team.ID)
	assert.Equal(t, 1, stats[0].Won)
	assert.Equal(t, 2, stats[0].Points)
	assert.Equal(t, 1, stats[1].Lost)
	assert.Equal(t, 0, stats[1].Points)
}

func TestComputeDraw(t *testing.T) {
	// One set each: a draw worth one point per side, even in a best-of-3
	// shape.
	teams := []tournament.Team{alpha, beta}
	matches := []tournament.Match{
		completedMatch("m1", "alpha", "beta", "6-4, 4-6"),
	}
	stats := standings.Compute(teams, matches)

	for _, stat := range stats {
		assert.Equal(t, 1, stat.Drawn)
		assert.Equal(t, 1, stat.Points)
		assert.Equal(t, 0, stat.Won)
		assert.Equal(t, 0, stat.Lost)
	}
}

func TestComputeEqualSetCountsForNeitherSide(t *testing.T) {
	// A 5-5 set belongs to nobody.
	teams := []tournament.Team{alpha, beta}
	matches := []tournament.Match{
		completedMatch("m1", "alpha", "beta", "5-5, 6-4"),
	}
	stats := standings.Compute(teams, matches)

	assert.Equal(t, "alpha", stats[0].Team.ID)
	assert.Equal(t, 1, stats[0].SetsFor)
	assert.Equal(t, 0, stats[0].SetsAgainst)
	assert.Equal(t, 2, stats[0].Points)
}

func TestComputeIgnoresUncompletedMatches(t *testing.T) {
	teams := []tournament.Team{alpha, beta}
	matches := []tournament.Match{
		{ID: "m1", HomeTeamID: "alpha", AwayTeamID: "beta"},
	}
	for _, stat := range standings.Compute(teams, matches) {
		assert.Zero(t, stat.Played)
		assert.Zero(t, stat.Points)
	}
}

func TestComputePointLaw(t *testing.T) {
	// Every completed match hands out exactly 2 points in total, whether
	// decisive (2+0) or drawn (1+1).
	teams, matches := exampleTournament()
	matches = append(matches, tournament.Match{ID: "m4", HomeTeamID: "alpha", AwayTeamID: "beta"}) // not played

	drawnTeams := []tournament.Team{alpha, beta}
	drawn := []tournament.Match{completedMatch("d1", "alpha", "beta", "6-4, 4-6")}

	total := func(stats []standings.TeamStats) int {
		sum := 0
		for _, s := range stats {
			sum += s.Points
		}
		return sum
	}

	assert.Equal(t, 2*3, total(standings.Compute(teams, matches)))
	assert.Equal(t, 2, total(standings.Compute(drawnTeams, drawn)))
}

func TestRanks(t *testing.T) {
	teams, matches := exampleTournament()
	stats := standings.Compute(teams, matches)
	ranks := standings.Ranks(stats)

	assert.Equal(t, 1, ranks["gamma"])
	assert.Equal(t, 2, ranks["alpha"])
	assert.Equal(t, 3, ranks["beta"])
}
