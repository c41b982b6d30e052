package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"astelab/astesearch/matcher"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(cfg, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestServiceSuggestOrdering(t *testing.T) {
	svc := newTestService(t, Config{TopK: 10})
	svc.ReplacePlaces([]matcher.Place{
		{Nome: "Roma"},
		{Nome: "Milano"},
		{Nome: "Torino"},
		{Nome: "Rimini"},
	})

	got := svc.SuggestNames("ri")
	require.Equal(t, []string{"Rimini", "Torino"}, got)
}

func TestServiceSuggestEmptyQueryKeepsOrder(t *testing.T) {
	svc := newTestService(t, Config{TopK: 3})
	svc.ReplacePlaces([]matcher.Place{
		{Nome: "Zagarolo"},
		{Nome: "Anzio"},
		{Nome: "Nettuno"},
		{Nome: "Velletri"},
	})

	// Empty box: original order, truncated to TopK.
	require.Equal(t, []string{"Zagarolo", "Anzio", "Nettuno"}, svc.SuggestNames(""))
}

func TestServiceTopKLimits(t *testing.T) {
	svc := newTestService(t, Config{TopK: 2})
	got := svc.SuggestNames("r")
	assert.Len(t, got, 2)
}

func TestServiceReplaceDeduplicates(t *testing.T) {
	svc := newTestService(t, Config{})
	svc.ReplacePlaces([]matcher.Place{
		{Nome: "Pesaro", Provincia: "PU"},
		{Nome: "Pésàro"},
		{Nome: "  "},
		{Nome: "PESARO"},
	})
	require.Equal(t, 1, svc.PlaceCount())

	got := svc.Suggest("pesaro")
	require.Len(t, got, 1)
	// First occurrence wins, casing and metadata intact.
	assert.Equal(t, "Pesaro", got[0].Nome)
	assert.Equal(t, "PU", got[0].Provincia)
}

func TestServiceBuiltinDataset(t *testing.T) {
	svc := newTestService(t, Config{TopK: 50})

	got := svc.SuggestNames("forli")
	require.NotEmpty(t, got)
	assert.Equal(t, "Forlì", got[0], "accented exact match must win")
	assert.Contains(t, got, "Forlì del Sannio")

	// Diacritics in the query fold the same way.
	assert.Equal(t, svc.SuggestNames("forlì"), got)
}

func TestServiceConfigUpdate(t *testing.T) {
	svc := newTestService(t, Config{TopK: 2})
	require.Len(t, svc.SuggestNames(""), 2)

	cfg := svc.Config()
	cfg.TopK = 5
	svc.UpdateConfig(cfg)
	require.Len(t, svc.SuggestNames(""), 5)
}

func TestServiceConcurrentSuggest(t *testing.T) {
	svc := newTestService(t, Config{TopK: 10})
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				svc.Suggest("mi")
				svc.Suggest("")
			}
		}()
	}
	go func() {
		defer func() { done <- struct{}{} }()
		for j := 0; j < 20; j++ {
			svc.ReplacePlaces(DefaultPlaces())
		}
	}()
	for i := 0; i < 5; i++ {
		<-done
	}
	require.NotEmpty(t, svc.Suggest("milano"))
}

func TestDefaultPlacesUnique(t *testing.T) {
	places := DefaultPlaces()
	require.NotEmpty(t, places)
	assert.Len(t, uniquePlaces(places), len(places), "built-in list must not contain duplicates")
}
