// Package clock converts 12-hour time ranges into canonical 24-hour form.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Conversion errors. ErrFormat and ErrRange both wrap ErrInvalidInput so
// callers that only care whether a conversion happened can check one error.
var (
	ErrInvalidInput = errors.New("invalid input, no conversion performed")
	ErrFormat       = fmt.Errorf("%w: expected \"H[:MM] AM|PM to H[:MM] AM|PM\"", ErrInvalidInput)
	ErrRange        = fmt.Errorf("%w: hour must be 1-12 and minute 0-59", ErrInvalidInput)
)

// ErrorKind names the kind of conversion failure: "range", "format",
// or "" if err is not a conversion error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrRange):
		return "range"
	case errors.Is(err, ErrFormat):
		return "format"
	}
	return ""
}

// rangePattern matches "<H>[:<MM>] <AM|PM> to <H>[:<MM>] <AM|PM>".
var rangePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))? (AM|PM) to (\d{1,2})(?::(\d{2}))? (AM|PM)$`)

// Meridiem is the AM/PM marker of a 12-hour clock time.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

func parseMeridiem(s string) (Meridiem, error) {
	switch s {
	case "AM":
		return AM, nil
	case "PM":
		return PM, nil
	}
	return AM, fmt.Errorf("%w: unknown meridiem %q", ErrFormat, s)
}

// clockField is one side of a 12-hour range as written by the user.
// Minute is only meaningful when HasMinute is set.
type clockField struct {
	Hour      int
	Minute    int
	HasMinute bool
	Meridiem  Meridiem
}

// TimeRange is a normalized start/end pair in 24-hour form.
type TimeRange struct {
	Start Time
	End   Time
}

// String returns the canonical "HH:MM to HH:MM" form.
func (r TimeRange) String() string {
	return r.Start.String() + " to " + r.End.String()
}

// Duration returns the length of the range. An end at or before the start
// is taken to fall on the following day.
func (r TimeRange) Duration() time.Duration {
	mins := r.End.Minutes() - r.Start.Minutes()
	if mins <= 0 {
		mins += 24 * 60
	}
	return time.Duration(mins) * time.Minute
}

// Convert parses a 12-hour range such as "9 AM to 5 PM" and returns it
// as "09:00 to 17:00".
func Convert(text string) (string, error) {
	r, err := Parse(text)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Parse parses and validates a 12-hour range.
// Returns an error wrapping ErrFormat if the text does not have the
// expected shape, or ErrRange if an hour or minute is out of bounds.
func Parse(text string) (TimeRange, error) {
	start, end, err := match(text)
	if err != nil {
		return TimeRange{}, err
	}

	startTime, err := start.normalize()
	if err != nil {
		return TimeRange{}, fmt.Errorf("start time: %w", err)
	}
	endTime, err := end.normalize()
	if err != nil {
		return TimeRange{}, fmt.Errorf("end time: %w", err)
	}

	return TimeRange{Start: startTime, End: endTime}, nil
}

// match extracts both sides of the range from a single structural match.
func match(text string) (start, end clockField, err error) {
	groups := rangePattern.FindStringSubmatch(text)
	if groups == nil {
		return start, end, fmt.Errorf("%w: %q", ErrFormat, text)
	}

	start, err = newClockField(groups[1], groups[2], groups[3])
	if err != nil {
		return start, end, err
	}
	end, err = newClockField(groups[4], groups[5], groups[6])
	if err != nil {
		return start, end, err
	}
	return start, end, nil
}

func newClockField(hour, minute, meridiem string) (clockField, error) {
	var f clockField

	h, err := strconv.Atoi(hour)
	if err != nil {
		return f, fmt.Errorf("%w: hour %q", ErrFormat, hour)
	}
	f.Hour = h

	if minute != "" {
		m, err := strconv.Atoi(minute)
		if err != nil {
			return f, fmt.Errorf("%w: minute %q", ErrFormat, minute)
		}
		f.Minute = m
		f.HasMinute = true
	}

	f.Meridiem, err = parseMeridiem(meridiem)
	if err != nil {
		return f, err
	}
	return f, nil
}

// normalize validates the field and converts it to 24-hour form.
func (f clockField) normalize() (Time, error) {
	if f.Hour < 1 || f.Hour > 12 {
		return Time{}, fmt.Errorf("%w: hour %d", ErrRange, f.Hour)
	}
	minute := 0
	if f.HasMinute {
		if f.Minute < 0 || f.Minute > 59 {
			return Time{}, fmt.Errorf("%w: minute %02d", ErrRange, f.Minute)
		}
		minute = f.Minute
	}

	hour := f.Hour
	switch {
	case f.Meridiem == AM && hour == 12:
		hour = 0
	case f.Meridiem == PM && hour != 12:
		hour += 12
	}
	return Time{Hour: hour, Minute: minute}, nil
}
