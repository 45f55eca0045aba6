package schedule_test

import (
	"testing"
	"time"

	"github.com/warp/backoffice/schedule"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range cases {
		if got := schedule.DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestDaysBetween_Inclusive(t *testing.T) {
	start := schedule.NewDate(2025, time.June, 10)

	if got := schedule.DaysBetween(start, start); got != 1 {
		t.Errorf("same-day span must be 1, got %d", got)
	}
	if got := schedule.DaysBetween(start, start.AddDays(4)); got != 5 {
		t.Errorf("expected 5-day span, got %d", got)
	}
	// Crossing a month boundary.
	if got := schedule.DaysBetween(schedule.NewDate(2025, time.June, 28), schedule.NewDate(2025, time.July, 2)); got != 5 {
		t.Errorf("expected 5-day span across months, got %d", got)
	}
}

func TestCalendarDate_Key(t *testing.T) {
	d := schedule.NewDate(2025, time.March, 7)
	if d.Key() != "2025-03-07" {
		t.Errorf("unexpected key %q", d.Key())
	}

	parsed, err := schedule.ParseDate("2025-03-07")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("ParseDate round trip mismatch: %v vs %v", parsed, d)
	}
}

func TestCalendarDate_Ordering(t *testing.T) {
	a := schedule.NewDate(2025, time.May, 1)
	b := schedule.NewDate(2025, time.May, 2)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !a.BeforeOrEqual(a) || !a.AfterOrEqual(a) {
		t.Error("inclusive comparisons must accept equal dates")
	}
	if !b.After(a) {
		t.Error("After is wrong")
	}
}

func TestWorkHours_SetZeroDeletes(t *testing.T) {
	wh := make(schedule.WorkHours)
	d := schedule.NewDate(2025, time.June, 2)

	wh.Set(d, 8)
	if !wh.Has(d) || wh.Get(d) != 8 {
		t.Fatal("entry not stored")
	}

	// Clearing a cell removes the entry so months stay sparse.
	wh.Set(d, 0)
	if wh.Has(d) {
		t.Error("zero-hour entry must be removed")
	}
	if len(wh) != 0 {
		t.Errorf("expected empty map, got %d entries", len(wh))
	}
}

func TestMonthBoundaries(t *testing.T) {
	if got := schedule.StartOfMonth(2025, time.February); got.Key() != "2025-02-01" {
		t.Errorf("StartOfMonth = %s", got.Key())
	}
	if got := schedule.EndOfMonth(2025, time.February); got.Key() != "2025-02-28" {
		t.Errorf("EndOfMonth = %s", got.Key())
	}
}
