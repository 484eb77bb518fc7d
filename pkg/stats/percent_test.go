package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int
		total    int
		expected float64
	}{
		{name: "three quarters", count: 3, total: 4, expected: 75},
		{name: "full", count: 4, total: 4, expected: 100},
		{name: "zero count", count: 0, total: 7, expected: 0},
		{name: "rounds to two decimals", count: 1, total: 3, expected: 33.33},
		{name: "rounds up", count: 2, total: 3, expected: 66.67},
		{name: "one seventh", count: 1, total: 7, expected: 14.29},
		// 1/32 is exactly 3.125; the tie rounds to the even neighbor.
		{name: "tie rounds half to even down", count: 1, total: 32, expected: 3.12},
		{name: "tie rounds half to even up", count: 3, total: 32, expected: 9.38},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			percent, err := Percent(tt.count, tt.total)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, percent, 0.0001)
		})
	}
}

func TestPercent_ZeroTotal(t *testing.T) {
	t.Parallel()

	_, err := Percent(5, 0)
	assert.ErrorIs(t, err, ErrZeroTotal)
}

func TestPercent_StaysInRange(t *testing.T) {
	t.Parallel()

	const total = 13

	for count := 0; count <= total; count++ {
		percent, err := Percent(count, total)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, percent, 0.0)
		assert.LessOrEqual(t, percent, 100.0)
	}
}
