// Package temporal defines the composite date and time parsers shared by the
// mission grammars: calendar dates, times of day, the ESA timestamp with its
// optional "T" separator, and Julian ordinal dates.
//
// All results are time.Time values in UTC. Identifier formats carry no zone
// information, so UTC is used throughout, matching how the producing ground
// segments define the encoded times.
package temporal

import (
	"time"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/combinator"
)

// Error codes used by temporal:
const (
	// InvalidDateError indicates a date whose fields were in range but that
	// does not exist in the calendar (e.g. February 30th).
	InvalidDateError = eoid.TemporalErrors + iota
)

var (
	month = combinator.DigitsInRange(2, 1, 12)
	day   = combinator.DigitsInRange(2, 1, 31)

	// Hour 24 and second 60 are admitted deliberately: some producers encode
	// end-of-day as 24:00:00 and leap seconds as :60.
	hour   = combinator.DigitsInRange(2, 0, 24)
	minute = combinator.DigitsInRange(2, 0, 59)
	second = combinator.DigitsInRange(2, 0, 60)

	dayOfYear = combinator.Digits(3)
)

// Date parses a calendar date: a signed 4-digit year, a month 01-12, and a
// day 01-31. Dates that pass the per-field ranges but do not exist in the
// calendar are rejected with InvalidDateError at the start of the field.
// The result is midnight UTC of the parsed day.
func Date(s string, pos int) (time.Time, int, error) {
	y, p, err := combinator.Year(s, pos)
	if err != nil {
		return time.Time{}, pos, err
	}
	m, p, err := month(s, p)
	if err != nil {
		return time.Time{}, pos, err
	}
	d, p, err := day(s, p)
	if err != nil {
		return time.Time{}, pos, err
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != time.Month(m) {
		return time.Time{}, pos, eoid.FormatError(InvalidDateError, pos,
			"no such date %04d-%02d-%02d", y, m, d)
	}
	return t, p, nil
}

// Clock parses a time of day (HHMMSS) as an offset from midnight. Hour 24
// and second 60 are accepted, so the result may reach a full 24 hours.
func Clock(s string, pos int) (time.Duration, int, error) {
	h, p, err := hour(s, pos)
	if err != nil {
		return 0, pos, err
	}
	m, p, err := minute(s, p)
	if err != nil {
		return 0, pos, err
	}
	sec, p, err := second(s, p)
	if err != nil {
		return 0, pos, err
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	return d, p, nil
}

// DateTime parses an ESA style timestamp: a calendar date, an optional
// case-insensitive "T" separator, and a time of day. Both
// "20200207T051836" and "20200207051836" parse to the identical value.
// 24:00:00 and leap-second values roll over via time arithmetic.
func DateTime(s string, pos int) (time.Time, int, error) {
	d, p, err := Date(s, pos)
	if err != nil {
		return time.Time{}, pos, err
	}
	if _, next, err := combinator.TagNoCase("t")(s, p); err == nil {
		p = next
	}
	c, p, err := Clock(s, p)
	if err != nil {
		return time.Time{}, pos, err
	}
	return d.Add(c), p, nil
}

// JulianDate parses a Julian ordinal date: a signed 4-digit year followed by
// a 3-digit day of year. The day of year is not range checked at the field
// level; it is added to January 1st of the year by calendar arithmetic, which
// rolls correctly across month and leap-year boundaries.
func JulianDate(s string, pos int) (time.Time, int, error) {
	y, p, err := combinator.Year(s, pos)
	if err != nil {
		return time.Time{}, pos, err
	}
	doy, p, err := dayOfYear(s, p)
	if err != nil {
		return time.Time{}, pos, err
	}
	t := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
	return t, p, nil
}
