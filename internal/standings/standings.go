// Package standings computes ranking tables and head-to-head grids from
// completed matches. Everything here is a pure recomputation over the current
// match state; nothing is cached or invalidated.
package standings

import (
	"sort"

	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// TeamStats is one row of the ranking table.
type TeamStats struct {
	Team        tournament.Team `json:"team"`
	Played      int             `json:"played"`
	Won         int             `json:"won"`
	Drawn       int             `json:"drawn"`
	Lost        int             `json:"lost"`
	SetsFor     int             `json:"setsFor"`
	SetsAgainst int             `json:"setsAgainst"`
	Points      int             `json:"points"`
}

// SetDiff is the primary tie-break key.
func (s TeamStats) SetDiff() int {
	return s.SetsFor - s.SetsAgainst
}

// countSets tallies how many sets each side of a match won from the given
// team's perspective. A set with equal scores counts for neither side.
func countSets(m tournament.Match, teamID string) (teamSets, oppSets int) {
	isHome := m.HomeTeamID == teamID
	for _, set := range m.Score.Sets {
		teamScore, oppScore := set.HomeScore, set.AwayScore
		if !isHome {
			teamScore, oppScore = oppScore, teamScore
		}
		switch {
		case teamScore > oppScore:
			teamSets++
		case oppScore > teamScore:
			oppSets++
		}
	}
	return teamSets, oppSets
}

// Compute builds the ranking table. Match outcome is a sets-won comparison,
// not a raw game total: winning more sets is a win (+2), equal set counts is
// a draw (+1 each), fewer is a loss (0). Ordering is points, then set
// difference, then sets won, all descending; order within a full tie is the
// roster order.
func Compute(teams []tournament.Team, matches []tournament.Match) []TeamStats {
	stats := make([]TeamStats, 0, len(teams))
	for _, team := range teams {
		stat := TeamStats{Team: team}
		for _, m := range matches {
			if !m.IsCompleted {
				continue
			}
			if m.HomeTeamID != team.ID && m.AwayTeamID != team.ID {
				continue
			}
			stat.Played++
			teamSets, oppSets := countSets(m, team.ID)
			stat.SetsFor += teamSets
			stat.SetsAgainst += oppSets
			switch {
			case teamSets > oppSets:
				stat.Won++
				stat.Points += 2
			case teamSets == oppSets:
				stat.Drawn++
				stat.Points++
			default:
				stat.Lost++
			}
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Points != stats[j].Points {
			return stats[i].Points > stats[j].Points
		}
		if stats[i].SetDiff() != stats[j].SetDiff() {
			return stats[i].SetDiff() > stats[j].SetDiff()
		}
		return stats[i].SetsFor > stats[j].SetsFor
	})
	return stats
}

// Ranks maps each team to its 1-based position in the sorted table.
func Ranks(stats []TeamStats) map[string]int {
	ranks := make(map[string]int, len(stats))
	for i, s := range stats {
		ranks[s.Team.ID] = i + 1
	}
	return ranks
}
