/*
holiday.go - Holiday calendar provider

PURPOSE:
  Produces the set of non-working calendar dates for a year, split into
  national and regional subsets, with combined lookup. The calendars that
  render month grids and the monthly stats calculator both depend only on
  the HolidayCalendar interface, never on a concrete rule table.

RULE MODEL:
  Holidays are fixed month/day rules anchored to the requested year.
  Regeneration is a pure function of the year: no mutation, no caching
  contract, identical output for identical input.

MOVABLE FEASTS:
  Good Friday and Easter Monday are deliberately fixed-date approximations
  (Mar 29 / Apr 1, their 2024 dates) rather than computed from the Easter
  algorithm. Downstream day counting depends on this behavior, so the
  approximation is preserved. Swapping in a computus-based calendar only
  requires another HolidayCalendar implementation.

SEE ALSO:
  - stats.go: Monthly work-stats calculator consuming IsHoliday
  - api/handlers.go: ListHolidays endpoint
*/
package schedule

import "time"

// =============================================================================
// HOLIDAY CALENDAR INTERFACE
// =============================================================================

// Jurisdiction tags a holiday as national or regional.
type Jurisdiction string

const (
	JurisdictionNational Jurisdiction = "national"
	JurisdictionRegional Jurisdiction = "regional"
)

// Holiday is a single non-working date produced by a calendar.
type Holiday struct {
	Date         CalendarDate
	Name         string
	Jurisdiction Jurisdiction
}

// HolidayCalendar provides holiday lookup for calendars and stats.
type HolidayCalendar interface {
	// NationalHolidays returns the national holidays for a year, in date order.
	NationalHolidays(year int) []Holiday

	// RegionalHolidays returns the region's additional holidays for a year.
	RegionalHolidays(year int) []Holiday

	// AllHolidays returns the union of national and regional holidays.
	AllHolidays(year int) []Holiday

	// IsHoliday reports whether the date is in AllHolidays(date.Year()).
	IsHoliday(date CalendarDate) bool

	// IsClosedDay reports whether the date is a holiday or falls on the
	// weekly rest day (Sunday).
	IsClosedDay(date CalendarDate) bool
}

// =============================================================================
// SPAIN / VALENCIA RULES
// =============================================================================

type holidayRule struct {
	month time.Month
	day   int
	name  string
}

var nationalRules = []holidayRule{
	{time.January, 1, "Año Nuevo"},
	{time.January, 6, "Reyes"},
	{time.March, 29, "Viernes Santo"}, // fixed-date approximation
	{time.May, 1, "Día del Trabajo"},
	{time.August, 15, "Asunción"},
	{time.November, 1, "Todos los Santos"},
	{time.December, 6, "Día de la Constitución"},
	{time.December, 8, "Inmaculada"},
	{time.December, 25, "Navidad"},
}

var regionalRules = []holidayRule{
	{time.March, 19, "San José"},
	{time.April, 1, "Lunes de Pascua"}, // fixed-date approximation
	{time.April, 22, "San Vicente Mártir"},
	{time.June, 24, "San Juan"},
	{time.October, 9, "Día de la Comunidad Valenciana"},
}

// SpainValencia is the holiday calendar for the company's jurisdiction:
// Spanish national holidays plus the Comunidad Valenciana additions.
type SpainValencia struct{}

var _ HolidayCalendar = SpainValencia{}

func (SpainValencia) NationalHolidays(year int) []Holiday {
	return materialize(nationalRules, year, JurisdictionNational)
}

func (SpainValencia) RegionalHolidays(year int) []Holiday {
	return materialize(regionalRules, year, JurisdictionRegional)
}

func (c SpainValencia) AllHolidays(year int) []Holiday {
	all := c.NationalHolidays(year)
	all = append(all, c.RegionalHolidays(year)...)
	sortHolidays(all)
	return all
}

func (c SpainValencia) IsHoliday(date CalendarDate) bool {
	for _, rules := range [][]holidayRule{nationalRules, regionalRules} {
		for _, r := range rules {
			if date.Month() == r.month && date.Day() == r.day {
				return true
			}
		}
	}
	return false
}

func (c SpainValencia) IsClosedDay(date CalendarDate) bool {
	return date.IsSunday() || c.IsHoliday(date)
}

func materialize(rules []holidayRule, year int, j Jurisdiction) []Holiday {
	out := make([]Holiday, 0, len(rules))
	for _, r := range rules {
		out = append(out, Holiday{
			Date:         NewDate(year, r.month, r.day),
			Name:         r.name,
			Jurisdiction: j,
		})
	}
	return out
}

func sortHolidays(hs []Holiday) {
	// Insertion sort: the combined list is 14 entries.
	for i := 1; i < len(hs); i++ {
		for j := i; j > 0 && hs[j].Date.Before(hs[j-1].Date); j-- {
			hs[j], hs[j-1] = hs[j-1], hs[j]
		}
	}
}

// =============================================================================
// NO-OP CALENDAR
// =============================================================================

// NoHolidays is a calendar with no holidays at all. Sundays still count as
// closed days. Useful in tests and for tenants without a regional calendar.
type NoHolidays struct{}

var _ HolidayCalendar = NoHolidays{}

func (NoHolidays) NationalHolidays(year int) []Holiday { return nil }
func (NoHolidays) RegionalHolidays(year int) []Holiday { return nil }
func (NoHolidays) AllHolidays(year int) []Holiday      { return nil }
func (NoHolidays) IsHoliday(date CalendarDate) bool    { return false }
func (NoHolidays) IsClosedDay(date CalendarDate) bool  { return date.IsSunday() }
