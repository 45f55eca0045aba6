package schedule_test

import (
	"testing"
	"time"

	"github.com/warp/backoffice/schedule"
)

func TestSpainValencia_FixedCardinality(t *testing.T) {
	// The rule tables are fixed month/day entries, so every year produces
	// the same counts: 9 national + 5 regional.
	cal := schedule.SpainValencia{}

	for _, year := range []int{2023, 2024, 2025, 2030} {
		if got := len(cal.NationalHolidays(year)); got != 9 {
			t.Errorf("year %d: expected 9 national holidays, got %d", year, got)
		}
		if got := len(cal.RegionalHolidays(year)); got != 5 {
			t.Errorf("year %d: expected 5 regional holidays, got %d", year, got)
		}
		if got := len(cal.AllHolidays(year)); got != 14 {
			t.Errorf("year %d: expected 14 holidays total, got %d", year, got)
		}
	}
}

func TestSpainValencia_IsHolidayConsistentWithSet(t *testing.T) {
	cal := schedule.SpainValencia{}
	year := 2025

	for _, h := range cal.AllHolidays(year) {
		if !cal.IsHoliday(h.Date) {
			t.Errorf("%s (%s) is in AllHolidays but IsHoliday is false", h.Date, h.Name)
		}
	}

	// A plain weekday that is in no rule table.
	if cal.IsHoliday(schedule.NewDate(year, time.February, 11)) {
		t.Error("Feb 11 should not be a holiday")
	}
}

func TestSpainValencia_AllHolidaysSorted(t *testing.T) {
	cal := schedule.SpainValencia{}
	all := cal.AllHolidays(2024)
	for i := 1; i < len(all); i++ {
		if all[i].Date.Before(all[i-1].Date) {
			t.Fatalf("holidays out of order: %s before %s", all[i].Date, all[i-1].Date)
		}
	}
}

func TestIsClosedDay_EverySundayRegardlessOfHolidays(t *testing.T) {
	cal := schedule.SpainValencia{}

	// Walk all of 2025 and check every Sunday.
	d := schedule.NewDate(2025, time.January, 1)
	end := schedule.NewDate(2025, time.December, 31)
	for d.BeforeOrEqual(end) {
		if d.IsSunday() && !cal.IsClosedDay(d) {
			t.Fatalf("%s is a Sunday but not a closed day", d)
		}
		d = d.AddDays(1)
	}

	// A Saturday that is not a holiday is open (asymmetric rest-day rule).
	sat := schedule.NewDate(2025, time.February, 8)
	if cal.IsClosedDay(sat) {
		t.Error("non-holiday Saturday should not be a closed day")
	}
}

func TestSpainValencia_MovableFeastApproximation(t *testing.T) {
	// Good Friday and Easter Monday are intentionally fixed-date entries
	// (Mar 29 / Apr 1). This pins the approximation so a future calendar
	// change is a deliberate decision, not an accident.
	cal := schedule.SpainValencia{}

	if !cal.IsHoliday(schedule.NewDate(2025, time.March, 29)) {
		t.Error("Mar 29 should be a holiday in every year (fixed Good Friday)")
	}
	if !cal.IsHoliday(schedule.NewDate(2025, time.April, 1)) {
		t.Error("Apr 1 should be a holiday in every year (fixed Easter Monday)")
	}
	// 2025's true Good Friday (Apr 18) is NOT in the table.
	if cal.IsHoliday(schedule.NewDate(2025, time.April, 18)) {
		t.Error("computed Easter dates should not appear in the fixed tables")
	}
}

func TestNoHolidays_SundayStillClosed(t *testing.T) {
	cal := schedule.NoHolidays{}
	sunday := schedule.NewDate(2025, time.June, 8)
	if !cal.IsClosedDay(sunday) {
		t.Error("NoHolidays must still close Sundays")
	}
	if cal.IsHoliday(sunday) {
		t.Error("NoHolidays must report no holidays")
	}
}
