package matcher

import "sort"

// Rank filters and orders candidates by how well they match query. An empty
// or whitespace-only query returns cands untouched in their original order.
// Otherwise every candidate is scored, non-matches are dropped and the rest
// come back ordered by descending score; candidates with equal scores keep
// their relative input order so results do not jitter across keystrokes.
// The input slice is never mutated.
func Rank[C Candidate](cands []C, query string) []C {
	return rankBy(cands, func(c C) string { return c.Label() }, query)
}

// RankStrings ranks plain labels with the same pipeline.
func RankStrings(labels []string, query string) []string {
	return rankBy(labels, func(s string) string { return s }, query)
}

func rankBy[T any](items []T, label func(T) string, query string) []T {
	q := Normalize(query)
	if q == "" {
		return items
	}
	hits := make([]scored[T], 0, len(items))
	for _, it := range items {
		if sc := Score(label(it), q); sc > 0 {
			hits = append(hits, scored[T]{item: it, score: sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
