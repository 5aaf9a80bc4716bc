// Package htmlimport extracts result candidates from pasted HTML fragments.
// Each match container contributes the concatenated team names of its home
// and away sides plus a normalized score text; matching those against the
// roster is the reconcile package's job.
package htmlimport

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/B21v/sports-tournament-manager/internal/reconcile"
	"github.com/B21v/sports-tournament-manager/internal/score"
)

// ParseResults extracts one candidate per ".public-match-container" element:
// team names from the left and right ".team-container" blocks and the raw
// score from the ".result-container" spans, run through score.Normalize.
func ParseResults(html string) ([]reconcile.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results html: %w", err)
	}

	var candidates []reconcile.Candidate
	doc.Find(".public-match-container").Each(func(_ int, sel *goquery.Selection) {
		team1 := joinTeamNames(sel.Find(".team-container:not(.right) .team-name"))
		team2 := joinTeamNames(sel.Find(".team-container.right .team-name"))

		var spans []string
		sel.Find(".result-container span").Each(func(_ int, s *goquery.Selection) {
			spans = append(spans, strings.TrimSpace(s.Text()))
		})
		scoreText := score.Normalize(strings.Join(spans, " "))

		log.Debug("Parsed match container", "team1", team1, "team2", team2, "score", scoreText)
		candidates = append(candidates, reconcile.Candidate{
			Team1Name: team1,
			Team2Name: team2,
			ScoreText: scoreText,
		})
	})
	return candidates, nil
}

// joinTeamNames concatenates the non-empty name fragments of one side with
// " / ", dropping the literal slash separators the markup carries.
func joinTeamNames(sel *goquery.Selection) string {
	var names []string
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && text != "/" {
			names = append(names, text)
		}
	})
	return strings.Join(names, " / ")
}
