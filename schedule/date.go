package schedule

import (
	"strings"
	"time"
)

// =============================================================================
// CALENDAR DATE - Day-granularity date (no time-of-day significance)
// =============================================================================

// CalendarDate is a plain date. Holiday rules and day counting never look at
// time-of-day, so the zero clock in UTC is the canonical representation.
type CalendarDate struct {
	Time time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() CalendarDate {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses an ISO "2006-01-02" date string.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{Time: t}, nil
}

// Comparison
func (d CalendarDate) Before(other CalendarDate) bool { return d.normalize().Before(other.normalize()) }
func (d CalendarDate) Equal(other CalendarDate) bool  { return d.normalize().Equal(other.normalize()) }
func (d CalendarDate) After(other CalendarDate) bool  { return d.normalize().After(other.normalize()) }
func (d CalendarDate) BeforeOrEqual(other CalendarDate) bool { return d.Before(other) || d.Equal(other) }
func (d CalendarDate) AfterOrEqual(other CalendarDate) bool  { return d.After(other) || d.Equal(other) }

func (d CalendarDate) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d CalendarDate) AddDays(n int) CalendarDate   { return CalendarDate{Time: d.Time.AddDate(0, 0, n)} }
func (d CalendarDate) AddMonths(n int) CalendarDate { return CalendarDate{Time: d.Time.AddDate(0, n, 0)} }

// Properties
func (d CalendarDate) Year() int             { return d.Time.Year() }
func (d CalendarDate) Month() time.Month     { return d.Time.Month() }
func (d CalendarDate) Day() int              { return d.Time.Day() }
func (d CalendarDate) Weekday() time.Weekday { return d.Time.Weekday() }
func (d CalendarDate) IsSunday() bool        { return d.Weekday() == time.Sunday }
func (d CalendarDate) IsSaturday() bool      { return d.Weekday() == time.Saturday }
func (d CalendarDate) IsWeekend() bool       { return d.IsSunday() || d.IsSaturday() }
func (d CalendarDate) IsZero() bool          { return d.Time.IsZero() }

// Key returns the ISO date string used as the WorkHours map key.
func (d CalendarDate) Key() string { return d.normalize().Format("2006-01-02") }

func (d CalendarDate) String() string { return d.Key() }

// JSON round trips as the bare ISO date, never RFC3339.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// MONTH UTILITIES
// =============================================================================
// Months are 1-based time.Month throughout this module. The only 0-based
// month indexing lives in clients; it is converted at the API boundary.

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartOfMonth(year int, month time.Month) CalendarDate {
	return NewDate(year, month, 1)
}

func EndOfMonth(year int, month time.Month) CalendarDate {
	return NewDate(year, month, DaysInMonth(year, month))
}

// DaysBetween returns the inclusive day count between from and to.
// Both endpoints count: [Jan 10, Jan 12] is 3 days.
func DaysBetween(from, to CalendarDate) int {
	return int(to.normalize().Sub(from.normalize()).Hours()/24) + 1
}

// =============================================================================
// WORK HOURS - Sparse per-day hours mapping for one employee
// =============================================================================

// WorkHours maps ISO date strings to hours worked. Entries are sparse: a
// missing key means no hours were recorded for that day, NOT "day off".
type WorkHours map[string]float64

// Get returns the recorded hours for a date (zero if none recorded).
func (wh WorkHours) Get(d CalendarDate) float64 { return wh[d.Key()] }

// Set records hours for a date. Setting zero removes the entry so the
// mapping stays sparse.
func (wh WorkHours) Set(d CalendarDate, hours float64) {
	if hours == 0 {
		delete(wh, d.Key())
		return
	}
	wh[d.Key()] = hours
}

// Has reports whether any hours entry exists for the date.
func (wh WorkHours) Has(d CalendarDate) bool {
	_, ok := wh[d.Key()]
	return ok
}
