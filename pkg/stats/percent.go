package stats

import (
	"errors"
	"math"
)

// ErrZeroTotal is returned when a percentage is requested against an empty
// axis. Callers guard this with an explicit "no activity" branch instead of
// letting NaN reach rendered output.
var ErrZeroTotal = errors.New("cannot compute percentage of zero total")

const (
	percentScale  = 100
	roundingScale = 100 // two decimal places
)

// Percent computes count/total as a percentage rounded to two decimal
// places. Ties round half to even, the same rule the bar renderer uses for
// cell counts. Percentages are independent per entry; a related group is
// not renormalized to sum to exactly 100.
func Percent(count, total int) (float64, error) {
	if total == 0 {
		return 0, ErrZeroTotal
	}

	raw := float64(count) / float64(total) * percentScale

	return math.RoundToEven(raw*roundingScale) / roundingScale, nil
}
