package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"astelab/astesearch/matcher"
)

// LoadPlaceFile reads a locality list from disk. CSV and TSV files carry
// nome[,provincia[,regione]] columns with an optional header row; any other
// extension is treated as plain text split on newlines, commas or
// semicolons. Duplicate names (after normalization) keep their first entry.
func LoadPlaceFile(path string) ([]matcher.Place, error) {
	clean := filepath.Clean(strings.TrimSpace(path))
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read places: %w", err)
	}

	var places []matcher.Place
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".csv":
		places, err = parsePlaceRecords(string(data), ',')
	case ".tsv":
		places, err = parsePlaceRecords(string(data), '\t')
	default:
		places = parsePlaceText(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parse places (%s): %w", clean, err)
	}

	places = uniquePlaces(places)
	if len(places) == 0 {
		return nil, fmt.Errorf("no localities found in %s", clean)
	}
	return places, nil
}

func parsePlaceRecords(data string, comma rune) ([]matcher.Place, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	places := make([]matcher.Place, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		nome := strings.TrimSpace(rec[0])
		if nome == "" {
			continue
		}
		if i == 0 && matcher.Normalize(nome) == "nome" {
			continue
		}
		p := matcher.Place{Nome: nome}
		if len(rec) > 1 {
			p.Provincia = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			p.Regione = strings.TrimSpace(rec[2])
		}
		places = append(places, p)
	}
	return places, nil
}

func parsePlaceText(s string) []matcher.Place {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '\n', '\r', ',', ';':
			return true
		default:
			return false
		}
	})
	places := make([]matcher.Place, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			places = append(places, matcher.Place{Nome: f})
		}
	}
	return places
}
