package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PropertyType identifies the kind of property being searched.
type PropertyType string

const (
	PropertyAny       PropertyType = ""
	PropertyApartment PropertyType = "appartamento"
	PropertyVilla     PropertyType = "villa"
	PropertyGarage    PropertyType = "garage"
	PropertyOffice    PropertyType = "ufficio"
	PropertyShop      PropertyType = "negozio"
	PropertyLand      PropertyType = "terreno"
)

var propertyTypes = map[PropertyType]struct{}{
	PropertyAny:       {},
	PropertyApartment: {},
	PropertyVilla:     {},
	PropertyGarage:    {},
	PropertyOffice:    {},
	PropertyShop:      {},
	PropertyLand:      {},
}

// Purpose is why the user is searching.
type Purpose string

const (
	PurposeAny    Purpose = ""
	PurposeLive   Purpose = "abitare"
	PurposeInvest Purpose = "investire"
)

var purposes = map[Purpose]struct{}{
	PurposeAny:    {},
	PurposeLive:   {},
	PurposeInvest: {},
}

// Range is an inclusive numeric filter bound. Zero means unbounded on that
// side.
type Range struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// Valid reports whether the bounds are usable as a filter.
func (r Range) Valid() bool {
	if r.Min < 0 || r.Max < 0 {
		return false
	}
	return r.Max == 0 || r.Min <= r.Max
}

// IsZero reports whether the range filters nothing.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Criteria is the shared filter record the wizard builds up across its three
// steps. It is a plain value; callers copy it freely.
type Criteria struct {
	Property PropertyType `json:"tipologia,omitempty"`
	Price    Range        `json:"prezzo,omitempty"`
	Size     Range        `json:"superficie,omitempty"`
	Rooms    Range        `json:"locali,omitempty"`
	Location string       `json:"localita,omitempty"`
	Purpose  Purpose      `json:"scopo,omitempty"`
}

var (
	ErrUnknownProperty = errors.New("unknown property type")
	ErrUnknownPurpose  = errors.New("unknown purpose")
	ErrInvalidRange    = errors.New("invalid range")
	ErrNoLocation      = errors.New("no locality selected")
)

type namedRange struct {
	name string
	r    Range
}

// checkRanges validates ranges in a fixed order so the reported field is
// always the first invalid one.
func checkRanges(pairs []namedRange) error {
	for _, p := range pairs {
		if !p.r.Valid() {
			return fmt.Errorf("%w: %s %d-%d", ErrInvalidRange, p.name, p.r.Min, p.r.Max)
		}
	}
	return nil
}

func (c Criteria) rangePairs() []namedRange {
	return []namedRange{
		{"prezzo", c.Price},
		{"superficie", c.Size},
		{"locali", c.Rooms},
	}
}

// Validate checks the whole record the way the final wizard step does.
func (c Criteria) Validate() error {
	if _, ok := propertyTypes[c.Property]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, c.Property)
	}
	if _, ok := purposes[c.Purpose]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPurpose, c.Purpose)
	}
	if err := checkRanges(c.rangePairs()); err != nil {
		return err
	}
	if strings.TrimSpace(c.Location) == "" {
		return ErrNoLocation
	}
	return nil
}

// SearchPayload is the request body the scraping backend expects. Building
// it is this package's job; sending it is the caller's.
type SearchPayload struct {
	Tipologia     string `json:"tipologia,omitempty"`
	PrezzoMin     int    `json:"prezzo_min,omitempty"`
	PrezzoMax     int    `json:"prezzo_max,omitempty"`
	SuperficieMin int    `json:"superficie_min,omitempty"`
	SuperficieMax int    `json:"superficie_max,omitempty"`
	LocaliMin     int    `json:"locali_min,omitempty"`
	LocaliMax     int    `json:"locali_max,omitempty"`
	Localita      string `json:"localita"`
	Scopo         string `json:"scopo,omitempty"`
}

// Payload flattens the criteria into the backend's wire shape.
func (c Criteria) Payload() SearchPayload {
	return SearchPayload{
		Tipologia:     string(c.Property),
		PrezzoMin:     c.Price.Min,
		PrezzoMax:     c.Price.Max,
		SuperficieMin: c.Size.Min,
		SuperficieMax: c.Size.Max,
		LocaliMin:     c.Rooms.Min,
		LocaliMax:     c.Rooms.Max,
		Localita:      strings.TrimSpace(c.Location),
		Scopo:         string(c.Purpose),
	}
}

// EncodePayload validates and serializes the criteria for submission.
func (c Criteria) EncodePayload() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(c.Payload())
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}
