package reconcile

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// maxNameDistance is the edit-distance ceiling for accepting a fuzzy team
// match. Anything worse is treated as unresolved so a wildly wrong pairing
// cannot silently corrupt a fixture.
const maxNameDistance = 5

// CleanName strips import artifacts from a raw team name: whitespace tokens
// of two runes or fewer and the literal win/loss markers "L" and "W" that
// OCR picks up next to result lines.
func CleanName(raw string) string {
	var kept []string
	for _, tok := range strings.Fields(raw) {
		if tok == "L" || tok == "W" || utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// normalizeName lowercases and drops everything outside Latin and Cyrillic
// letters and digits, matching how team names are compared.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r >= 'а' && r <= 'я',
			r == 'ё':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveTeam fuzzily matches a raw candidate name against the roster,
// picking the team at minimum edit distance over the normalized strings.
// Rejects the match when the best distance exceeds the threshold.
func resolveTeam(raw string, teams []tournament.Team) (tournament.Team, bool) {
	name := normalizeName(CleanName(raw))
	if name == "" {
		return tournament.Team{}, false
	}

	best := -1
	var bestTeam tournament.Team
	for _, t := range teams {
		d := levenshtein.ComputeDistance(name, normalizeName(t.Name))
		if best == -1 || d < best {
			best = d
			bestTeam = t
		}
	}
	if best == -1 || best > maxNameDistance {
		return tournament.Team{}, false
	}
	return bestTeam, true
}
