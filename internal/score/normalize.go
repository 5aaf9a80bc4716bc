package score

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	slashSep   = regexp.MustCompile(`\s*/\s*`)
	multiSpace = regexp.MustCompile(`\s+`)
	commaSep   = regexp.MustCompile(`\s*,\s*`)

	// Known score-pair shapes found in imported result markup.
	pairPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+-\d+`),
		regexp.MustCompile(`\d+:\d+`),
		regexp.MustCompile(`\d+/\d+`),
		regexp.MustCompile(`\(\d+-\d+\)`),
		regexp.MustCompile(`\[\d+-\d+\]`),
	}

	pairCleaner = strings.NewReplacer("(", "", ")", "", "[", "", "]", "", ":", "-", "/", "-")
)

// Normalize cleans raw score text extracted from an external source into the
// comma-separated "home-away" form Parse understands. Slash and colon
// separators become dashes, whitespace is collapsed, and every substring
// matching a known score-pair shape is extracted. When nothing matches, the
// cleaned text is returned as-is, best effort.
func Normalize(raw string) string {
	cleaned := slashSep.ReplaceAllString(raw, ", ")
	cleaned = strings.ReplaceAll(cleaned, ":", "-")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	cleaned = commaSep.ReplaceAllString(cleaned, ", ")
	cleaned = strings.TrimSpace(cleaned)

	// The patterns overlap (a parenthesized pair also contains a plain
	// pair), so matches covering an already-claimed span are dropped.
	var spans []pairSpan
	for _, re := range pairPatterns {
		for _, loc := range re.FindAllStringIndex(cleaned, -1) {
			if overlaps(spans, loc[0], loc[1]) {
				continue
			}
			spans = append(spans, pairSpan{
				start: loc[0],
				end:   loc[1],
				text:  pairCleaner.Replace(cleaned[loc[0]:loc[1]]),
			})
		}
	}
	if len(spans) == 0 {
		log.Warn("No score patterns found in imported text", "text", cleaned)
		return cleaned
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	pairs := make([]string, len(spans))
	for i, s := range spans {
		pairs[i] = s.text
	}
	return strings.Join(pairs, ", ")
}

type pairSpan struct {
	start, end int
	text       string
}

func overlaps(spans []pairSpan, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}
