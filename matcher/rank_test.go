package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStringsFiltersAndOrders(t *testing.T) {
	in := []string{"Roma", "Milano", "Firenze", "Torino", "Rimini"}
	got := RankStrings(in, "ri")
	// Rimini is a prefix match, Torino only a substring match; the rest do
	// not contain "ri" at all.
	require.Equal(t, []string{"Rimini", "Torino"}, got)
	// The input order is untouched.
	assert.Equal(t, []string{"Roma", "Milano", "Firenze", "Torino", "Rimini"}, in)
}

func TestRankStringsEmptyQueryPassthrough(t *testing.T) {
	in := []string{"Roma", "Milano", "Firenze"}
	for _, q := range []string{"", "   ", "\t"} {
		got := RankStrings(in, q)
		require.Equal(t, in, got)
		// Same backing slice, not a reordered copy.
		assert.Same(t, &in[0], &got[0])
	}
}

func TestRankStringsEmptyInput(t *testing.T) {
	assert.Empty(t, RankStrings(nil, "milano"))
	assert.Empty(t, RankStrings([]string{}, "milano"))
}

func TestRankExactOutranksEverything(t *testing.T) {
	in := []string{"Milano Marittima", "Milanello", "Milano"}
	got := RankStrings(in, "milano")
	require.NotEmpty(t, got)
	assert.Equal(t, "Milano", got[0])
}

func TestRankDiacriticInsensitive(t *testing.T) {
	in := []string{"Pesaro", "Pésàro"}
	got := RankStrings(in, "pesaro")
	// Both are exact matches after normalization and both are retained, in
	// input order.
	require.Equal(t, []string{"Pesaro", "Pésàro"}, got)
}

func TestRankStableOnTies(t *testing.T) {
	// Same rune length, both prefix matches: identical scores.
	require.Equal(t, Score("Salerno", "sa"), Score("Sassari", "sa"))

	got := RankStrings([]string{"Salerno", "Sassari"}, "sa")
	require.Equal(t, []string{"Salerno", "Sassari"}, got)

	got = RankStrings([]string{"Sassari", "Salerno"}, "sa")
	require.Equal(t, []string{"Sassari", "Salerno"}, got)
}

func TestRankPlaces(t *testing.T) {
	in := []Place{
		{Nome: "Roma", Provincia: "RM"},
		{Nome: "Rimini", Provincia: "RN"},
		{Nome: "Torino", Provincia: "TO"},
	}
	got := Rank(in, "RI")
	require.Len(t, got, 2)
	assert.Equal(t, "Rimini", got[0].Nome)
	assert.Equal(t, "RN", got[0].Provincia)
	assert.Equal(t, "Torino", got[1].Nome)
}

func TestRankReentrant(t *testing.T) {
	in := []string{"Rimini", "Riccione", "Rieti"}
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				RankStrings(in, "ri")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	require.Equal(t, []string{"Rieti", "Rimini", "Riccione"}, RankStrings(in, "ri"))
}
