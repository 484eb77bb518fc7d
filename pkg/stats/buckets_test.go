package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// at builds a UTC timestamp on a fixed date with the given hour.
func at(t *testing.T, day, hour int) time.Time {
	t.Helper()

	return time.Date(2024, time.March, day, hour, 30, 0, 0, time.UTC)
}

func TestCountDayTimes_OnePerBucket(t *testing.T) {
	t.Parallel()

	events := []time.Time{
		at(t, 4, 7),
		at(t, 4, 13),
		at(t, 4, 19),
		at(t, 4, 2),
	}

	buckets := CountDayTimes(events, time.UTC)

	assert.Equal(t, DayTimes{1, 1, 1, 1}, buckets)
	assert.Equal(t, DayTimes{1, 1, 1, 1}, buckets.Rotate())
}

func TestCountDayTimes_BucketIdentity(t *testing.T) {
	t.Parallel()

	// Hours 1, 8, 8, 14, 14, 14, 20 distinguish bucket positions.
	events := []time.Time{
		at(t, 4, 1),
		at(t, 4, 8), at(t, 4, 8),
		at(t, 4, 14), at(t, 4, 14), at(t, 4, 14),
		at(t, 4, 20),
	}

	buckets := CountDayTimes(events, time.UTC)
	assert.Equal(t, DayTimes{1, 2, 3, 1}, buckets)

	// Rotation publishes morning first: [6-12, 12-18, 18-24, 0-6].
	assert.Equal(t, DayTimes{2, 3, 1, 1}, buckets.Rotate())
}

func TestCountDayTimes_Localizes(t *testing.T) {
	t.Parallel()

	// 23:30 UTC is 08:30 in UTC+9, so it lands in the morning bucket.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	events := []time.Time{at(t, 4, 23)}

	buckets := CountDayTimes(events, tokyo)

	assert.Equal(t, DayTimes{0, 1, 0, 0}, buckets)
}

func TestDayTimes_Sum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, DayTimes{1, 2, 3, 4}.Sum())
	assert.Equal(t, 0, DayTimes{}.Sum())
}

func TestCountWeekdays_ISOOrder(t *testing.T) {
	t.Parallel()

	// 2024-03-04 is a Monday; 2024-03-10 is a Sunday.
	events := []time.Time{
		at(t, 4, 12),
		at(t, 4, 15),
		at(t, 10, 12),
	}

	buckets := CountWeekdays(events, time.UTC)

	assert.Equal(t, Weekdays{2, 0, 0, 0, 0, 0, 1}, buckets)
}

func TestCountWeekdays_LocalizationShiftsDay(t *testing.T) {
	t.Parallel()

	// Monday 23:30 UTC is already Tuesday in UTC+9.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	events := []time.Time{at(t, 4, 23)}

	buckets := CountWeekdays(events, tokyo)

	assert.Equal(t, Weekdays{0, 1, 0, 0, 0, 0, 0}, buckets)
}

func TestWeekdays_Max(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		buckets  Weekdays
		expected int
	}{
		{name: "single peak", buckets: Weekdays{0, 5, 1, 0, 0, 0, 0}, expected: 1},
		{name: "tie resolves to earliest", buckets: Weekdays{3, 3, 0, 0, 0, 0, 0}, expected: 0},
		{name: "all zero", buckets: Weekdays{}, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.buckets.Max())
		})
	}
}
