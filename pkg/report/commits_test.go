package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmetrics/readmetrics/pkg/graphics"
	"github.com/readmetrics/readmetrics/pkg/locale"
)

// testOptions builds render options with English labels and block glyphs.
func testOptions(t *testing.T) Options {
	t.Helper()

	translator, err := locale.NewTranslator("en")
	require.NoError(t, err)

	return Options{Translator: translator, Symbols: graphics.VersionOne}
}

// commitAt builds a UTC commit timestamp on a fixed Monday with the given
// hour.
func commitAt(hour int) time.Time {
	return time.Date(2024, time.March, 4, hour, 15, 0, 0, time.UTC)
}

func TestCommitTimes_UniformDistribution(t *testing.T) {
	t.Parallel()

	events := []time.Time{commitAt(7), commitAt(13), commitAt(19), commitAt(2)}

	block, err := CommitTimes(events, "UTC", false, testOptions(t))
	require.NoError(t, err)

	assert.Contains(t, block, "```text\n")
	assert.Equal(t, 4, strings.Count(block, "25.00 % "))

	// Published order starts with the morning bucket.
	lines := strings.Split(block, "\n")
	var tableLines []string

	for _, line := range lines {
		if strings.Contains(line, "commits") {
			tableLines = append(tableLines, line)
		}
	}

	require.Len(t, tableLines, 4)
	assert.True(t, strings.HasPrefix(tableLines[0], "🌞 Morning"))
	assert.True(t, strings.HasPrefix(tableLines[3], "🌙 Night"))
}

func TestCommitTimes_EarlyBirdTitle(t *testing.T) {
	t.Parallel()

	events := []time.Time{commitAt(8), commitAt(9), commitAt(14), commitAt(22)}

	block, err := CommitTimes(events, "UTC", false, testOptions(t))
	require.NoError(t, err)

	assert.Contains(t, block, "I'm an Early 🐤")
	assert.NotContains(t, block, "I'm a Night 🦉")
}

func TestCommitTimes_NightOwlTitle(t *testing.T) {
	t.Parallel()

	events := []time.Time{commitAt(19), commitAt(2), commitAt(3)}

	block, err := CommitTimes(events, "UTC", false, testOptions(t))
	require.NoError(t, err)

	assert.Contains(t, block, "I'm a Night 🦉")
}

func TestCommitTimes_WeekdayTable(t *testing.T) {
	t.Parallel()

	// Two Monday commits, one Sunday commit.
	events := []time.Time{
		commitAt(10),
		commitAt(11),
		time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	}

	block, err := CommitTimes(events, "UTC", true, testOptions(t))
	require.NoError(t, err)

	assert.Contains(t, block, "📅")
	assert.Contains(t, block, "I'm Most Productive on Monday")
	assert.Contains(t, block, "Sunday")
}

func TestCommitTimes_WeekdayTableOmitted(t *testing.T) {
	t.Parallel()

	events := []time.Time{commitAt(10)}

	block, err := CommitTimes(events, "UTC", false, testOptions(t))
	require.NoError(t, err)

	assert.NotContains(t, block, "📅")
	assert.NotContains(t, block, "Monday")
}

func TestCommitTimes_NoEvents(t *testing.T) {
	t.Parallel()

	_, err := CommitTimes(nil, "UTC", true, testOptions(t))
	assert.ErrorIs(t, err, ErrNoActivity)
}

func TestCommitTimes_BadTimezone(t *testing.T) {
	t.Parallel()

	_, err := CommitTimes([]time.Time{commitAt(10)}, "Not/AZone", false, testOptions(t))
	assert.Error(t, err)
}

func TestCommitTimes_LocalizedBuckets(t *testing.T) {
	t.Parallel()

	// 23:15 UTC is morning in UTC+9 (Asia/Tokyo).
	events := []time.Time{commitAt(23)}

	block, err := CommitTimes(events, "Asia/Tokyo", false, testOptions(t))
	require.NoError(t, err)

	lines := strings.Split(block, "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "🌞 Morning") {
			assert.Contains(t, line, "1 commits")

			return
		}
	}

	t.Fatal("morning bucket line not found")
}
