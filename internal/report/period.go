package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for calendar values that do not name a real date,
// e.g. month 13 or February 30th.
var ErrInvalidDate = errors.New("invalid date")

// anchor is a Saturday known to end a bi-weekly period. All bi-weekly windows
// stay aligned to it across years.
var anchor = time.Date(2016, time.January, 23, 0, 0, 0, 0, time.UTC)

// Window is a contiguous date range selecting entries for a report.
// Start is inclusive, End exclusive; both are midnights UTC, so the last
// calendar day of the window is End minus one day.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Monthly returns the window covering the given calendar month,
// labeled "YYYY-MM".
func Monthly(year, month int) (Window, error) {
	if year < 1 || month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: year=%d month=%d", ErrInvalidDate, year, month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: fmt.Sprintf("%04d-%02d", year, month),
	}, nil
}

// Biweekly returns the anchor-aligned 14-day window selected by the given
// reference date, labeled "{start} to {end}" with ISO dates. Periods always
// end on a Saturday: the reference date is walked back to a Saturday, and if
// that Saturday is an odd number of weeks from the anchor, the period end
// moves forward one week. A reference date in the week after an aligned
// Saturday selects the window that just ended, so the window can close
// before the reference date itself.
func Biweekly(year, month, day int) (Window, error) {
	end, err := calendarDate(year, month, day)
	if err != nil {
		return Window{}, err
	}
	for end.Weekday() != time.Saturday {
		end = end.AddDate(0, 0, -1)
	}
	if daysBetween(anchor, end)%14 != 0 {
		end = end.AddDate(0, 0, 7)
	}
	start := end.AddDate(0, 0, -13)
	return Window{
		Start: start,
		End:   end.AddDate(0, 0, 1),
		Label: fmt.Sprintf("%s to %s", start.Format(time.DateOnly), end.Format(time.DateOnly)),
	}, nil
}

// calendarDate builds a midnight UTC time and rejects values that
// time.Date would silently normalize (e.g. April 31 -> May 1).
func calendarDate(year, month, day int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// daysBetween returns the signed number of days from a to b. Both arguments
// are midnights UTC, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
