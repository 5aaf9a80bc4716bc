package standings

import (
	"fmt"
	"strings"

	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// Outcome classifies a head-to-head cell from the row team's point of view.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
	OutcomeNone Outcome = "none"
)

// Cell is one entry of the head-to-head grid. Text is two display lines
// separated by "\n": with exactly three sets the third goes on the second
// line (best-of-3 convention), otherwise the second line stays blank so all
// rows keep the same height. Diagonal, missing and incomplete cells have
// empty text and OutcomeNone.
type Cell struct {
	Text    string  `json:"text"`
	Outcome Outcome `json:"outcome"`
}

// BuildMatrix produces the pairwise grid indexed [row][col] in roster order.
// Each off-diagonal cell renders the unique fixture for that unordered pair
// from the row team's perspective, classified with the same sets-won
// comparison Compute uses.
func BuildMatrix(teams []tournament.Team, matches []tournament.Match) [][]Cell {
	grid := make([][]Cell, len(teams))
	for r, rowTeam := range teams {
		grid[r] = make([]Cell, len(teams))
		for c, colTeam := range teams {
			grid[r][c] = Cell{Outcome: OutcomeNone}
			if rowTeam.ID == colTeam.ID {
				continue
			}
			idx := tournament.MatchIndexBetween(matches, rowTeam.ID, colTeam.ID)
			if idx < 0 || !matches[idx].IsCompleted {
				continue
			}
			m := matches[idx]
			grid[r][c] = Cell{
				Text:    cellText(m, rowTeam.ID),
				Outcome: cellOutcome(m, rowTeam.ID),
			}
		}
	}
	return grid
}

func cellText(m tournament.Match, teamID string) string {
	isHome := m.HomeTeamID == teamID
	parts := make([]string, 0, len(m.Score.Sets))
	for _, set := range m.Score.Sets {
		teamScore, oppScore := set.HomeScore, set.AwayScore
		if !isHome {
			teamScore, oppScore = oppScore, teamScore
		}
		parts = append(parts, fmt.Sprintf("%d-%d", teamScore, oppScore))
	}
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 3 {
		return strings.Join(parts[:2], ", ") + "\n" + parts[2]
	}
	return strings.Join(parts, ", ") + "\n"
}

func cellOutcome(m tournament.Match, teamID string) Outcome {
	teamSets, oppSets := countSets(m, teamID)
	switch {
	case teamSets > oppSets:
		return OutcomeWin
	case teamSets < oppSets:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
