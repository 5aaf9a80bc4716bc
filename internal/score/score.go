// Package score parses and formats free-text tennis set scores such as
// "6-4, 6-3". Parsing is deliberately lenient: missing or non-numeric
// components degrade to 0 and Parse never fails. Callers that need strict
// validation must add it at the boundary.
package score

import (
	"strconv"
	"strings"

	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// Perspective says which side of the fixture the text was written from.
// Stored scores always use the fixture's fixed home orientation, so parsing
// away-perspective text swaps each set before storage.
type Perspective string

const (
	Home Perspective = "home"
	Away Perspective = "away"
)

// Parse splits text on commas into per-set tokens and each token on a dash
// into the two set scores. A token with more than one dash ("6-4-3") keeps
// only the first two components. The result is always marked completed:
// parsing is only invoked on an explicit save.
func Parse(text string, p Perspective) tournament.Score {
	tokens := strings.Split(text, ",")
	sets := make([]tournament.SetScore, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(strings.TrimSpace(tok), "-")
		set := tournament.SetScore{HomeScore: atoiOrZero(parts[0])}
		if len(parts) > 1 {
			set.AwayScore = atoiOrZero(parts[1])
		}
		if p == Away {
			set.HomeScore, set.AwayScore = set.AwayScore, set.HomeScore
		}
		sets = append(sets, set)
	}
	return tournament.Score{Sets: sets, IsCompleted: true}
}

// Format is the inverse of Parse: sets joined with ", ", each rendered from
// the given perspective. Returns "" when no sets are recorded.
func Format(s tournament.Score, p Perspective) string {
	if len(s.Sets) == 0 {
		return ""
	}
	parts := make([]string, len(s.Sets))
	for i, set := range s.Sets {
		a, b := set.HomeScore, set.AwayScore
		if p == Away {
			a, b = b, a
		}
		parts[i] = strconv.Itoa(a) + "-" + strconv.Itoa(b)
	}
	return strings.Join(parts, ", ")
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
