package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/stats"
)

// Day-time segment labels in published (rotated) order: the first entry
// describes the 6-12 bucket.
var (
	dayTimeEmoji = [stats.DayTimeBucketCount]string{"🌞", "🌆", "🌃", "🌙"}
	dayTimeKeys  = [stats.DayTimeBucketCount]string{"Morning", "Daytime", "Evening", "Night"}
)

// weekdayKeys are translation keys in ISO order, Monday first.
var weekdayKeys = [stats.WeekdayBucketCount]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// CommitTimes renders the commit day-time table and, optionally, the
// day-of-week table. Events are localized to the given IANA time zone before
// bucketing. Returns ErrNoActivity when there are no events.
func CommitTimes(events []time.Time, timezone string, showWeekdays bool, opts Options) (string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("load time zone %q: %w", timezone, err)
	}

	dayTimes := stats.CountDayTimes(events, loc).Rotate()
	if dayTimes.Sum() == 0 {
		return "", ErrNoActivity
	}

	var block strings.Builder

	dayTimeBlock, err := renderDayTimes(dayTimes, opts)
	if err != nil {
		return "", err
	}

	block.WriteString(dayTimeBlock)

	if showWeekdays {
		weekdays := stats.CountWeekdays(events, loc)

		weekdayBlock, weekdayErr := renderWeekdays(weekdays, opts)
		if weekdayErr != nil {
			return "", weekdayErr
		}

		block.WriteString(weekdayBlock)
	}

	return block.String(), nil
}

// renderDayTimes renders the four-bucket day-time table with its
// early-bird/night-owl title. Buckets arrive in published order.
func renderDayTimes(dayTimes stats.DayTimes, opts Options) (string, error) {
	total := dayTimes.Sum()
	tr := opts.Translator

	names := make([]string, stats.DayTimeBucketCount)
	texts := make([]string, stats.DayTimeBucketCount)
	percents := make([]float64, stats.DayTimeBucketCount)

	for i, count := range dayTimes {
		names[i] = dayTimeEmoji[i] + " " + tr.T(dayTimeKeys[i])
		texts[i] = fmt.Sprintf("%d %s", count, tr.T("commits"))

		percent, err := stats.Percent(count, total)
		if err != nil {
			return "", fmt.Errorf("day-time percent: %w", err)
		}

		percents[i] = percent
	}

	measures, err := graphics.Zip(names, texts, percents)
	if err != nil {
		return "", fmt.Errorf("day-time measures: %w", err)
	}

	early := dayTimes[0] + dayTimes[1]
	late := dayTimes[2] + dayTimes[3]

	title := tr.T("I am a Night")
	if early >= late {
		title = tr.T("I am an Early")
	}

	list := graphics.MakeList(measures, opts.listOptions(stats.WeekdayBucketCount, false))

	return fmt.Sprintf("**%s** \n\n```text\n%s\n```\n", title, list), nil
}

// renderWeekdays renders the seven-bucket day-of-week table titled with the
// most productive weekday.
func renderWeekdays(weekdays stats.Weekdays, opts Options) (string, error) {
	total := weekdays.Sum()
	if total == 0 {
		return "", ErrNoActivity
	}

	tr := opts.Translator

	names := make([]string, stats.WeekdayBucketCount)
	texts := make([]string, stats.WeekdayBucketCount)
	percents := make([]float64, stats.WeekdayBucketCount)

	for i, count := range weekdays {
		names[i] = tr.T(weekdayKeys[i])
		texts[i] = fmt.Sprintf("%d %s", count, tr.T("commits"))

		percent, err := stats.Percent(count, total)
		if err != nil {
			return "", fmt.Errorf("weekday percent: %w", err)
		}

		percents[i] = percent
	}

	measures, err := graphics.Zip(names, texts, percents)
	if err != nil {
		return "", fmt.Errorf("weekday measures: %w", err)
	}

	title := tr.Tf("I am Most Productive on", names[weekdays.Max()])
	list := graphics.MakeList(measures, opts.listOptions(stats.WeekdayBucketCount, false))

	return fmt.Sprintf("📅 **%s** \n\n```text\n%s\n```\n", title, list), nil
}
