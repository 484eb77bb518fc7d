package graphics

import (
	"math"
	"strings"
)

const (
	// GraphWidth is the fixed cell count of a rendered progress bar.
	GraphWidth = 25

	// percentPerCell is the percentage span covered by one bar cell.
	percentPerCell = 4

	maxPercent = 100
	minPercent = 0
)

// MakeGraph renders a percentage as a fixed 25-cell progress bar using the
// given glyph pair. The filled cell count is RoundToEven(percent/4):
// half-to-even rounding is deliberate and locked by tests, since at 25-cell
// resolution the half-point decides which bars look one cell too full.
// Out-of-range percentages are clamped so the cell count stays within 0..25.
func MakeGraph(percent float64, pair Pair) string {
	if percent > maxPercent {
		percent = maxPercent
	}

	if percent < minPercent {
		percent = minPercent
	}

	filled := int(math.RoundToEven(percent / percentPerCell))

	return strings.Repeat(pair.Filled, filled) + strings.Repeat(pair.Empty, GraphWidth-filled)
}
