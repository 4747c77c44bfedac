package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime24 is returned by the 24-hour parsers.
var ErrInvalidTime24 = errors.New("time must be in H:MM or HH:MM format")

const minutesPerDay = 24 * 60

// Time is a wall-clock time in 24-hour form.
type Time struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String returns the time as "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the number of minutes since midnight.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Format12 returns the time in 12-hour form, e.g. "9:05 PM".
func (t Time) Format12() string {
	meridiem := AM
	if t.Hour >= 12 {
		meridiem = PM
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// MinutesToTime converts minutes since midnight to a Time,
// clamping to the 00:00-23:59 range.
func MinutesToTime(m int) Time {
	if m < 0 {
		m = 0
	}
	if m >= minutesPerDay {
		m = minutesPerDay - 1
	}
	return Time{Hour: m / 60, Minute: m % 60}
}

// ParseTime24 parses "H:MM" or "HH:MM" in 24-hour form.
// Surrounding whitespace is ignored.
func ParseTime24(s string) (Time, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime24, s)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || !isDigits(hourPart) {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime24, s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || !isDigits(minutePart) {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime24, s)
	}
	if hour > 23 || minute > 59 {
		return Time{}, fmt.Errorf("%w: %q out of range", ErrInvalidTime24, s)
	}
	return Time{Hour: hour, Minute: minute}, nil
}

// ParseRange24 parses a 24-hour range in the form produced by
// TimeRange.String. Either side may omit the leading zero.
func ParseRange24(s string) (TimeRange, error) {
	startPart, endPart, ok := strings.Cut(s, " to ")
	if !ok {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTime24, s)
	}
	start, err := ParseTime24(startPart)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTime24(endPart)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
