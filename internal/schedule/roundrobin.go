// Package schedule generates round-robin fixture lists.
package schedule

import (
	"github.com/google/uuid"

	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// Generate emits one match for every unordered team pair {i, j} with i < j in
// roster order, the earlier team as home, for a total of n·(n-1)/2 fixtures
// with empty uncompleted scores. Pure; the caller is responsible for only
// generating once per tournament lifecycle.
func Generate(teams []tournament.Team) []tournament.Match {
	matches := make([]tournament.Match, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			matches = append(matches, tournament.Match{
				ID:         uuid.New().String(),
				HomeTeamID: teams[i].ID,
				AwayTeamID: teams[j].ID,
				Score:      tournament.Score{Sets: []tournament.SetScore{}},
			})
		}
	}
	return matches
}
