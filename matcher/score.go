package matcher

import (
	"strings"
	"unicode/utf8"
)

// Score tiers. Every exact match outranks every prefix match, and every
// prefix match outranks every substring match: the bands are spaced so that
// the length and index penalties cannot cross a tier boundary for labels
// under ~200 runes.
const (
	exactScore    = 1000.0
	prefixBase    = 800.0
	substringBase = 600.0
	lengthPenalty = 0.01
)

// Score rates one candidate label against an already normalized, non-empty
// query. Higher is better, 0 means no match. Within the prefix tier shorter
// labels win; within the substring tier earlier occurrences win, with a
// fractional length penalty as the finer tie-break.
//
// Length penalties count the runes of the label exactly as supplied, not of
// its normalized form, so surrounding whitespace still costs prefix-tier
// points even though it is trimmed for matching.
func Score(label, normalizedQuery string) float64 {
	cand := Normalize(label)
	if cand == normalizedQuery {
		return exactScore
	}
	n := float64(utf8.RuneCountInString(label))
	if strings.HasPrefix(cand, normalizedQuery) {
		return prefixBase - n
	}
	if idx := strings.Index(cand, normalizedQuery); idx >= 0 {
		return substringBase - float64(utf8.RuneCountInString(cand[:idx])) - lengthPenalty*n
	}
	return 0
}
