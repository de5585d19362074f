// Package dates holds the calendar helpers shared by the wizard, the booking
// service and the availability generator. All dates are ISO calendar days
// (YYYY-MM-DD) interpreted in UTC.
package dates

import (
	"regexp"
	"time"
)

const Layout = "2006-01-02"

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s has the YYYY-MM-DD shape. It does not check the calendar.
func IsISODate(s string) bool { return isoDate.MatchString(s) }

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string { return t.UTC().Format(Layout) }

// Today returns the start of the current UTC day.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights is the calendar-day difference checkOut - checkIn.
// It may be zero or negative; unparseable input yields 0.
func Nights(checkIn, checkOut string) int {
	in, err := Parse(checkIn)
	if err != nil {
		return 0
	}
	out, err := Parse(checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// ValidRange reports whether both dates parse and checkOut is strictly after checkIn.
func ValidRange(checkIn, checkOut string) bool {
	in, err := Parse(checkIn)
	if err != nil {
		return false
	}
	out, err := Parse(checkOut)
	if err != nil {
		return false
	}
	return out.After(in)
}

// IsPast reports whether day is before the UTC day of now.
func IsPast(day string, now time.Time) bool {
	d, err := Parse(day)
	if err != nil {
		return false
	}
	return d.Before(Today(now))
}

// Between returns every day from start to end inclusive.
func Between(start, end string) []string {
	s, err := Parse(start)
	if err != nil {
		return nil
	}
	n := Nights(start, end)
	if n < 0 {
		return nil
	}
	out := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, Format(s.AddDate(0, 0, i)))
	}
	return out
}

// StayNights returns the occupied nights of a stay: [checkIn, checkOut).
func StayNights(checkIn, checkOut string) []string {
	all := Between(checkIn, checkOut)
	if len(all) == 0 {
		return nil
	}
	return all[:len(all)-1]
}

// AddDays shifts an ISO day; invalid input is returned unchanged.
func AddDays(day string, n int) string {
	d, err := Parse(day)
	if err != nil {
		return day
	}
	return Format(d.AddDate(0, 0, n))
}

// Display renders "Jan 15, 2025".
func Display(day string) string {
	d, err := Parse(day)
	if err != nil {
		return day
	}
	return d.Format("Jan 2, 2006")
}

// DisplayRange renders "Jan 15 - Jan 20, 2025", repeating the year only when it differs.
func DisplayRange(checkIn, checkOut string) string {
	in, err1 := Parse(checkIn)
	out, err2 := Parse(checkOut)
	if err1 != nil || err2 != nil {
		return checkIn + " - " + checkOut
	}
	if in.Year() == out.Year() {
		return in.Format("Jan 2") + " - " + out.Format("Jan 2, 2006")
	}
	return in.Format("Jan 2, 2006") + " - " + out.Format("Jan 2, 2006")
}
