package graphics

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeGraph_FullBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("█", 25), MakeGraph(100, VersionOne))
}

func TestMakeGraph_EmptyBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("░", 25), MakeGraph(0, VersionOne))
}

func TestMakeGraph_WidthAndFillInvariant(t *testing.T) {
	t.Parallel()

	for percent := 0.0; percent <= 100.0; percent += 0.5 {
		bar := MakeGraph(percent, VersionOne)

		assert.Equal(t, GraphWidth, utf8.RuneCountInString(bar), "percent %.1f", percent)

		expectedFilled := int(math.RoundToEven(percent / 4))
		assert.Equal(t, expectedFilled, strings.Count(bar, VersionOne.Filled), "percent %.1f", percent)
	}
}

func TestMakeGraph_HalfToEvenRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		percent  float64
		expected int
	}{
		// 10/4 = 2.5 rounds to the even neighbor 2, not 3.
		{name: "ten percent rounds down", percent: 10, expected: 2},
		// 30/4 = 7.5 rounds to the even neighbor 8.
		{name: "thirty percent rounds up", percent: 30, expected: 8},
		// 50/4 = 12.5 rounds to 12.
		{name: "fifty percent rounds down", percent: 50, expected: 12},
		{name: "just below half point", percent: 9.9, expected: 2},
		{name: "just above half point", percent: 10.1, expected: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bar := MakeGraph(tt.percent, VersionOne)
			assert.Equal(t, tt.expected, strings.Count(bar, "█"))
		})
	}
}

func TestMakeGraph_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("░", 25), MakeGraph(-12, VersionOne))
	assert.Equal(t, strings.Repeat("█", 25), MakeGraph(140, VersionOne))
}

func TestMakeGraph_UsesSelectedPair(t *testing.T) {
	t.Parallel()

	bar := MakeGraph(40, VersionTwo)

	assert.Equal(t, 10, strings.Count(bar, "⣿"))
	assert.Equal(t, 15, strings.Count(bar, "⣀"))
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version  int
		expected Pair
	}{
		{version: 1, expected: VersionOne},
		{version: 2, expected: VersionTwo},
		{version: 3, expected: VersionThree},
	}

	for _, tt := range tests {
		tt := tt
		pair, err := Symbols(tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, pair)
	}
}

func TestSymbols_UnknownVersion(t *testing.T) {
	t.Parallel()

	for _, version := range []int{0, 4, -1} {
		_, err := Symbols(version)
		assert.ErrorIs(t, err, ErrUnknownSymbolVersion)
	}
}
