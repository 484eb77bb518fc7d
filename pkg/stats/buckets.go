// Package stats buckets timestamped activity events into fixed-size
// categorical histograms and converts raw counts into display percentages.
package stats

import (
	"time"
)

// Number of buckets per classification axis.
const (
	// DayTimeBucketCount is the number of six-hour day segments.
	DayTimeBucketCount = 4

	// WeekdayBucketCount is the number of days in a week.
	WeekdayBucketCount = 7

	// hoursPerBucket is the width of a single day-time bucket.
	hoursPerBucket = 6
)

// DayTimes is a fixed histogram over four six-hour day segments.
// Index semantics depend on rotation state: as counted the order is
// [0-6, 6-12, 12-18, 18-24]; after Rotate it is [6-12, 12-18, 18-24, 0-6].
type DayTimes [DayTimeBucketCount]int

// Weekdays is a fixed histogram over ISO weekdays, Monday at index 0.
type Weekdays [WeekdayBucketCount]int

// CountDayTimes buckets events into six-hour day segments after localizing
// each timestamp to loc. The returned order is the raw counting order
// [0-6, 6-12, 12-18, 18-24]; call Rotate before publishing.
func CountDayTimes(events []time.Time, loc *time.Location) DayTimes {
	var buckets DayTimes

	for _, event := range events {
		local := event.In(loc)
		buckets[local.Hour()/hoursPerBucket]++
	}

	return buckets
}

// Rotate left-rotates the histogram by one bucket so that the published
// order starts with the morning segment: [6-12, 12-18, 18-24, 0-6].
// Purely cosmetic; counts are unchanged.
func (d DayTimes) Rotate() DayTimes {
	return DayTimes{d[1], d[2], d[3], d[0]}
}

// Sum returns the total event count across all day-time buckets.
func (d DayTimes) Sum() int {
	total := 0
	for _, count := range d {
		total += count
	}

	return total
}

// CountWeekdays buckets events by ISO weekday (Monday=0 ... Sunday=6) after
// localizing each timestamp to loc. No rotation is applied.
func CountWeekdays(events []time.Time, loc *time.Location) Weekdays {
	var buckets Weekdays

	for _, event := range events {
		local := event.In(loc)
		// time.Weekday counts from Sunday; shift so Monday is index 0.
		buckets[(int(local.Weekday())+WeekdayBucketCount-1)%WeekdayBucketCount]++
	}

	return buckets
}

// Sum returns the total event count across all weekday buckets.
func (w Weekdays) Sum() int {
	total := 0
	for _, count := range w {
		total += count
	}

	return total
}

// Max returns the index of the largest bucket. Ties resolve to the earliest
// weekday, matching the published "most productive day" selection.
func (w Weekdays) Max() int {
	best := 0
	for i, count := range w {
		if count > w[best] {
			best = i
		}
	}

	return best
}
