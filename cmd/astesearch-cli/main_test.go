package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astelab/astesearch/internal/app"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in      string
		want    app.Range
		wantErr bool
	}{
		{in: "", want: app.Range{}},
		{in: "100000-300000", want: app.Range{Min: 100_000, Max: 300_000}},
		{in: "-300000", want: app.Range{Max: 300_000}},
		{in: "100000-", want: app.Range{Min: 100_000}},
		{in: "100000", want: app.Range{Min: 100_000}},
		{in: " 2 - 4 ", want: app.Range{Min: 2, Max: 4}},
		{in: "abc-4", wantErr: true},
		{in: "4-abc", wantErr: true},
		{in: "10-2", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseRange(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
