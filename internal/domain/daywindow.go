package domain

import (
	"fmt"
	"time"
)

// DayWindow returns the half-open interval [start, end) covering the calendar
// day of now in loc. End is computed with AddDate so DST days stay correct.
func DayWindow(now time.Time, loc *time.Location) (start, end time.Time) {
	local := now.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	next := start.AddDate(0, 0, 1)
	end = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc)
	return start, end
}

// DayOf returns midnight of now's calendar day in loc, used as a DATE value.
func DayOf(now time.Time, loc *time.Location) time.Time {
	start, _ := DayWindow(now, loc)
	return start
}

// ParseTimezone parses a timezone name. "" and "Local" resolve to the server
// zone; an unknown name is an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}
