// Package ocr extracts "name / name" team pairs from raw recognized text.
// Recognition itself happens outside this module; only its text output is
// consumed here.
package ocr

import (
	"regexp"
	"strings"
)

var (
	lineBreak   = regexp.MustCompile(`\r?\n`)
	pairPattern = regexp.MustCompile(`[A-Za-zА-Яа-яЁё\s]+?/[A-Za-zА-Яа-яЁё\s]+`)
)

// ExtractPairs scans each line of recognized text for "name/name" pairs of
// letters and spaces, returning them trimmed in document order. Lines with no
// pair are skipped; a line can yield several pairs.
func ExtractPairs(text string) []string {
	var pairs []string
	for _, line := range lineBreak.Split(text, -1) {
		for _, m := range pairPattern.FindAllString(line, -1) {
			pairs = append(pairs, strings.TrimSpace(m))
		}
	}
	return pairs
}

// SplitPair splits an extracted pair on its slash into the two name halves,
// trimmed. The halves feed reconciliation as team1/team2.
func SplitPair(pair string) (team1, team2 string) {
	left, right, _ := strings.Cut(pair, "/")
	return strings.TrimSpace(left), strings.TrimSpace(right)
}
