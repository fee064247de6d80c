package stats

import (
	"time"

	"samplehub/internal/domains"
)

const secondsPerDay = 24 * 60 * 60

// ComputeDurationWindow measures a campaign in whole calendar days as seen in loc.
// Time of day is ignored. A sample without a schedule yields a zero window.
func ComputeDurationWindow(start, end *time.Time, now time.Time, loc *time.Location) domains.DurationWindow {
	if start == nil || end == nil {
		return domains.DurationWindow{}
	}
	if loc == nil {
		loc = time.Local
	}

	startDay := civilDay(*start, loc)
	total := max(0, civilDay(*end, loc)-startDay)
	elapsed := min(max(0, civilDay(now, loc)-startDay), total)

	return domains.DurationWindow{
		TotalDurationDays: total,
		DaysSinceStart:    elapsed,
	}
}

// civilDay numbers the local calendar date of t. Dates are re-anchored in UTC
// so a DST shift between two midnights does not leave a fractional day.
func civilDay(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}
