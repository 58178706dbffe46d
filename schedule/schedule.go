// Package schedule gates activation to a yearly calendar window
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate reports a day/month pair that names no calendar day
var ErrInvalidDate = errors.New("invalid date in schedule")

// MonthDay is a date without a year
type MonthDay struct {
	Day   int
	Month time.Month
}

// Validate accepts any day that exists in a leap year
func (d MonthDay) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > daysIn(d.Month, 2024) {
		return fmt.Errorf("%w: %s %d", ErrInvalidDate, d.Month, d.Day)
	}
	return nil
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
}

// ParseMonthDay reads MM-DD
func ParseMonthDay(s string) (MonthDay, error) {
	mm, dd, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return MonthDay{}, fmt.Errorf("%w: %q is not MM-DD", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: month %q", ErrInvalidDate, mm)
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: day %q", ErrInvalidDate, dd)
	}
	md := MonthDay{Day: day, Month: time.Month(month)}
	if err := md.Validate(); err != nil {
		return MonthDay{}, err
	}
	return md, nil
}

// Window is an inclusive yearly range; To before From wraps over new year
type Window struct {
	From MonthDay
	To   MonthDay
}

// ParseWindow reads a From and To pair of MM-DD dates
func ParseWindow(from, to string) (Window, error) {
	f, err := ParseMonthDay(from)
	if err != nil {
		return Window{}, err
	}
	t, err := ParseMonthDay(to)
	if err != nil {
		return Window{}, err
	}
	return Window{From: f, To: t}, nil
}

// Within reports whether now falls inside the window, including the whole To day
// Feb 29 in a non-leap year rolls over to Mar 1
func Within(w Window, now time.Time) (bool, error) {
	if err := w.From.Validate(); err != nil {
		return false, err
	}
	if err := w.To.Validate(); err != nil {
		return false, err
	}

	year, loc := now.Year(), now.Location()
	start := time.Date(year, w.From.Month, w.From.Day, 0, 0, 0, 0, loc)
	end := time.Date(year, w.To.Month, w.To.Day+1, 0, 0, 0, 0, loc)

	if !start.Before(end) {
		// Wrapped window: inside when after start this year or before end this year
		return !now.Before(start) || now.Before(end), nil
	}
	return !now.Before(start) && now.Before(end), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
