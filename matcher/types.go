package matcher

// Candidate is one selectable item offered to the matching engine. Anything
// that can produce a display label can be ranked; the engine never inspects
// candidates beyond this accessor.
type Candidate interface {
	Label() string
}

// Place is a selectable Italian locality.
type Place struct {
	Nome      string `json:"nome"`
	Provincia string `json:"provincia,omitempty"`
	Regione   string `json:"regione,omitempty"`
}

// Label implements Candidate.
func (p Place) Label() string { return p.Nome }

// scored pairs a candidate with its score inside the ranking pipeline. It
// never escapes Rank.
type scored[T any] struct {
	item  T
	score float64
}
