package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"astelab/astesearch/matcher"
)

// Service owns the locality list and answers autocomplete queries with the
// matching engine. Safe for concurrent use: the place slice is replaced
// atomically and never mutated in place, so overlapping Suggest calls from
// independent inputs see a consistent snapshot.
type Service struct {
	mu     sync.RWMutex
	cfg    Config
	places []matcher.Place

	logger *zap.Logger
}

// NewService builds a service from the configuration. When cfg.PlacesPath is
// set the file replaces the built-in list; otherwise the default localities
// are used. A nil logger is replaced with a no-op.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ApplyDefaults()

	places := uniquePlaces(defaultPlaces)
	if cfg.PlacesPath != "" {
		loaded, err := LoadPlaceFile(cfg.PlacesPath)
		if err != nil {
			return nil, fmt.Errorf("load places: %w", err)
		}
		places = loaded
	}

	s := &Service{cfg: cfg, places: places, logger: logger}
	s.logger.Info("locality list ready",
		zap.Int("count", len(places)),
		zap.String("source", placeSource(cfg.PlacesPath)))
	return s, nil
}

func placeSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// PlaceCount returns how many localities are loaded.
func (s *Service) PlaceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.places)
}

// ReplacePlaces swaps the locality list, deduplicating on normalized names.
func (s *Service) ReplacePlaces(places []matcher.Place) {
	cleaned := uniquePlaces(places)
	s.mu.Lock()
	s.places = cleaned
	s.mu.Unlock()
	s.logger.Info("locality list replaced", zap.Int("count", len(cleaned)))
}

// Suggest ranks the localities against the query and returns at most TopK of
// them, best match first. An empty query yields the head of the list in its
// original order, the "show everything while the box is empty" behavior.
func (s *Service) Suggest(query string) []matcher.Place {
	s.mu.RLock()
	places := s.places
	topK := s.cfg.TopK
	s.mu.RUnlock()

	ranked := matcher.Rank(places, query)
	ranked = limitPlaces(ranked, topK)
	s.logger.Debug("suggest",
		zap.String("query", query),
		zap.Int("matches", len(ranked)))
	return ranked
}

// SuggestNames is Suggest reduced to display labels.
func (s *Service) SuggestNames(query string) []string {
	ranked := s.Suggest(query)
	names := make([]string, len(ranked))
	for i, p := range ranked {
		names[i] = p.Nome
	}
	return names
}

func limitPlaces(places []matcher.Place, k int) []matcher.Place {
	if k <= 0 || len(places) <= k {
		return places
	}
	return places[:k]
}
