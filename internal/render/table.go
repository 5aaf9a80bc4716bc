// Package render produces the plain-text views of a tournament: the combined
// standings/head-to-head table and the fixture list.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/B21v/sports-tournament-manager/internal/score"
	"github.com/B21v/sports-tournament-manager/internal/standings"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

var outcomeMarks = map[standings.Outcome]string{
	standings.OutcomeWin:  "+",
	standings.OutcomeDraw: "=",
	standings.OutcomeLoss: "-",
	standings.OutcomeNone: "",
}

// Table renders the round-robin grid with per-team totals, one row per team
// in roster order. Head-to-head cells show the set scores from the row
// team's perspective with a win/draw/loss mark; the Place column comes from
// the ranked standings.
func Table(t tournament.Tournament) string {
	stats := standings.Compute(t.Teams, t.Matches)
	ranks := standings.Ranks(stats)
	grid := standings.BuildMatrix(t.Teams, t.Matches)

	statByTeam := make(map[string]standings.TeamStats, len(stats))
	for _, s := range stats {
		statByTeam[s.Team.ID] = s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", t.Name, t.Type)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	header := []string{"#", "Team"}
	for i := range t.Teams {
		header = append(header, fmt.Sprintf("%d", i+1))
	}
	header = append(header, "W", "L", "+/-", "Pts", "Place", "Sets")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for r, team := range t.Teams {
		stat := statByTeam[team.ID]
		row := []string{fmt.Sprintf("%d", r+1), team.Name}
		for c := range t.Teams {
			if r == c {
				row = append(row, "x")
				continue
			}
			row = append(row, cellLabel(grid[r][c]))
		}
		row = append(row,
			fmt.Sprintf("%d", stat.Won),
			fmt.Sprintf("%d", stat.Lost),
			fmt.Sprintf("%d", stat.SetDiff()),
			fmt.Sprintf("%d", stat.Points),
			fmt.Sprintf("%d", ranks[team.ID]),
			fmt.Sprintf("%d:%d", stat.SetsFor, stat.SetsAgainst),
		)
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	return b.String()
}

func cellLabel(cell standings.Cell) string {
	text := strings.TrimSpace(strings.ReplaceAll(cell.Text, "\n", " "))
	if text == "" {
		return "."
	}
	if mark := outcomeMarks[cell.Outcome]; mark != "" {
		return mark + " " + text
	}
	return text
}

// Matches renders the fixture list with ids, pairings and recorded scores,
// for picking a match to score from the command line.
func Matches(t tournament.Tournament) string {
	names := make(map[string]string, len(t.Teams))
	for _, team := range t.Teams {
		names[team.ID] = team.Name
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Match\tHome\tAway\tScore")
	for _, m := range t.Matches {
		scoreText := score.Format(m.Score, score.Home)
		if scoreText == "" {
			scoreText = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, names[m.HomeTeamID], names[m.AwayTeamID], scoreText)
	}
	w.Flush()
	return b.String()
}
