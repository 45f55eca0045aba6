package schedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// allWeekdaysHoliday closes every weekday of the year. Used to exercise the
// "no expected working days" edge case.
type allWeekdaysHoliday struct{ schedule.NoHolidays }

func (allWeekdaysHoliday) IsHoliday(d schedule.CalendarDate) bool { return !d.IsWeekend() }

func hoursFor(entries map[int]float64, year int, month time.Month) schedule.WorkHours {
	wh := make(schedule.WorkHours)
	for day, h := range entries {
		wh.Set(schedule.NewDate(year, month, day), h)
	}
	return wh
}

// =============================================================================
// WORKING-DAY CLASSIFICATION
// =============================================================================

func TestComputeMonthlyStats_EmptyMonth(t *testing.T) {
	// GIVEN: No hours recorded at all for January 2025
	// THEN: Everything is zero except the calendar-derived fields

	stats := schedule.ComputeMonthlyStats(2025, time.January, schedule.WorkHours{}, schedule.SpainValencia{})

	// January 2025: 23 weekdays, minus Jan 1 (Wed) and Jan 6 (Mon) holidays.
	if stats.WorkDays != 21 {
		t.Errorf("expected 21 work days, got %d", stats.WorkDays)
	}
	if stats.ExpectedHours != 168 {
		t.Errorf("expected 168 expected hours, got %v", stats.ExpectedHours)
	}
	if stats.TotalHours != 0 || stats.Overtime != 0 || stats.LaboralHours != 0 {
		t.Errorf("expected zero worked stats, got %+v", stats)
	}
	if !stats.GrossProfit.IsZero() {
		t.Errorf("expected zero gross profit, got %s", stats.GrossProfit)
	}
}

func TestComputeMonthlyStats_FullMonthNoOvertime(t *testing.T) {
	// GIVEN: July 2025 (23 weekdays, no holidays), 8h on 20 of the weekdays
	// THEN: workDays=23, expectedHours=184, totalHours=160, overtime=0

	entries := map[int]float64{}
	count := 0
	for day := 1; day <= 31 && count < 20; day++ {
		d := schedule.NewDate(2025, time.July, day)
		if !d.IsWeekend() {
			entries[day] = 8
			count++
		}
	}

	stats := schedule.ComputeMonthlyStats(2025, time.July,
		hoursFor(entries, 2025, time.July), schedule.SpainValencia{})

	if stats.WorkDays != 23 {
		t.Errorf("expected 23 work days, got %d", stats.WorkDays)
	}
	if stats.ExpectedHours != 184 {
		t.Errorf("expected 184 expected hours, got %v", stats.ExpectedHours)
	}
	if stats.TotalHours != 160 {
		t.Errorf("expected 160 total hours, got %v", stats.TotalHours)
	}
	if stats.Overtime != 0 {
		t.Errorf("expected no overtime, got %v", stats.Overtime)
	}
}

func TestComputeMonthlyStats_EveryWeekdayHoliday(t *testing.T) {
	// GIVEN: A calendar that closes every weekday
	// WHEN: Hours are recorded anyway
	// THEN: workDays=0, expectedHours=0, all hours become overtime

	wh := hoursFor(map[int]float64{2: 8, 3: 6}, 2025, time.June)
	stats := schedule.ComputeMonthlyStats(2025, time.June, wh, allWeekdaysHoliday{})

	if stats.WorkDays != 0 || stats.ExpectedHours != 0 {
		t.Fatalf("expected no working days, got %+v", stats)
	}
	if stats.TotalHours != 14 {
		t.Errorf("expected 14 total hours, got %v", stats.TotalHours)
	}
	if stats.Overtime != 14 {
		t.Errorf("expected all hours as overtime, got %v", stats.Overtime)
	}
}

// =============================================================================
// SATURDAY / SUNDAY ASYMMETRY
// =============================================================================
// Saturdays never count toward workDays or expectedHours, but hours logged on
// a Saturday count toward both totalHours and laboralHours. Sundays count
// toward totalHours only. Do not "fix" this without checking the calendar UI.

func TestComputeMonthlyStats_SundayHours(t *testing.T) {
	// June 8, 2025 is a Sunday.
	wh := hoursFor(map[int]float64{8: 5}, 2025, time.June)
	stats := schedule.ComputeMonthlyStats(2025, time.June, wh, schedule.SpainValencia{})

	if stats.TotalHours != 5 {
		t.Errorf("Sunday hours must count in totalHours, got %v", stats.TotalHours)
	}
	if stats.LaboralHours != 0 {
		t.Errorf("Sunday hours must not count in laboralHours, got %v", stats.LaboralHours)
	}
}

func TestComputeMonthlyStats_SaturdayAsymmetry(t *testing.T) {
	// June 7, 2025 is a Saturday.
	wh := hoursFor(map[int]float64{7: 4}, 2025, time.June)
	stats := schedule.ComputeMonthlyStats(2025, time.June, wh, schedule.SpainValencia{})

	if stats.TotalHours != 4 {
		t.Errorf("Saturday hours must count in totalHours, got %v", stats.TotalHours)
	}
	if stats.LaboralHours != 4 {
		t.Errorf("Saturday hours must count in laboralHours, got %v", stats.LaboralHours)
	}

	// Compare against the empty month: the Saturday entry must not have
	// added an expected working day.
	empty := schedule.ComputeMonthlyStats(2025, time.June, schedule.WorkHours{}, schedule.SpainValencia{})
	if stats.WorkDays != empty.WorkDays {
		t.Errorf("Saturday hours changed workDays: %d vs %d", stats.WorkDays, empty.WorkDays)
	}
}

func TestComputeMonthlyStats_HolidayHoursCountTotalOnly(t *testing.T) {
	// Aug 15, 2025 (Asunción) is a Friday.
	wh := hoursFor(map[int]float64{15: 8}, 2025, time.August)
	stats := schedule.ComputeMonthlyStats(2025, time.August, wh, schedule.SpainValencia{})

	if stats.TotalHours != 8 {
		t.Errorf("holiday hours must count in totalHours, got %v", stats.TotalHours)
	}
	if stats.LaboralHours != 0 {
		t.Errorf("holiday hours must not count in laboralHours, got %v", stats.LaboralHours)
	}
}

// =============================================================================
// OVERTIME
// =============================================================================

func TestComputeMonthlyStats_OvertimeFlooredAtZero(t *testing.T) {
	// Increasing any single day's hours increases totalHours by the delta
	// and never decreases overtime.
	cal := schedule.SpainValencia{}
	wh := make(schedule.WorkHours)
	day := schedule.NewDate(2025, time.July, 14) // a Monday

	prev := schedule.ComputeMonthlyStats(2025, time.July, wh, cal)
	for _, h := range []float64{8, 100, 150} {
		wh.Set(day, h)
		cur := schedule.ComputeMonthlyStats(2025, time.July, wh, cal)
		if cur.TotalHours != h {
			t.Fatalf("expected totalHours %v, got %v", h, cur.TotalHours)
		}
		if cur.Overtime < prev.Overtime {
			t.Fatalf("overtime decreased from %v to %v", prev.Overtime, cur.Overtime)
		}
		if cur.Overtime < 0 {
			t.Fatalf("overtime went negative: %v", cur.Overtime)
		}
		prev = cur
	}

	// 150h against 184 expected: still no overtime. 190h: 6h overtime.
	wh.Set(day, 190)
	cur := schedule.ComputeMonthlyStats(2025, time.July, wh, cal)
	if cur.Overtime != 6 {
		t.Errorf("expected 6h overtime, got %v", cur.Overtime)
	}
}

// =============================================================================
// GROSS PROFIT
// =============================================================================

func TestComputeMonthlyStats_GrossProfit(t *testing.T) {
	// GIVEN: 8h on two weekdays, one of them covered by an approved absence,
	//        plus 8h on a holiday; project rate 25.50/h resolves everywhere
	// THEN: Only the regular worked day contributes to gross profit

	cal := schedule.SpainValencia{}
	wh := hoursFor(map[int]float64{14: 8, 15: 8}, 2025, time.August) // Thu, Fri(=Asunción)
	wh.Set(schedule.NewDate(2025, time.August, 13), 8)               // Wednesday, absent

	absent := schedule.NewDate(2025, time.August, 13)
	rate := decimal.NewFromFloat(25.5)

	stats := schedule.ComputeMonthlyStats(2025, time.August, wh, cal,
		schedule.WithAbsences(func(d schedule.CalendarDate) bool { return d.Equal(absent) }),
		schedule.WithProjectRates(func(d schedule.CalendarDate) (float64, decimal.Decimal, bool) {
			return 8, rate, true
		}),
	)

	want := decimal.NewFromFloat(8 * 25.5)
	if !stats.GrossProfit.Equal(want) {
		t.Errorf("expected gross profit %s, got %s", want, stats.GrossProfit)
	}
}

func TestComputeMonthlyStats_GrossProfitNeedsRecordedHours(t *testing.T) {
	// A resolving rate without recorded hours contributes nothing.
	stats := schedule.ComputeMonthlyStats(2025, time.July, schedule.WorkHours{}, schedule.SpainValencia{},
		schedule.WithProjectRates(func(schedule.CalendarDate) (float64, decimal.Decimal, bool) {
			return 8, decimal.NewFromInt(30), true
		}),
	)
	if !stats.GrossProfit.IsZero() {
		t.Errorf("expected zero gross profit, got %s", stats.GrossProfit)
	}
}

// =============================================================================
// MONTHLY PROGRESS
// =============================================================================

func TestComputeMonthlyProgress(t *testing.T) {
	cases := []struct {
		name     string
		worked   float64
		required float64
		status   schedule.ProgressStatus
	}{
		{"ahead above 105 percent", 170, 160, schedule.ProgressAhead},
		{"on track at 100 percent", 160, 160, schedule.ProgressOnTrack},
		{"on track at exactly 90 percent", 144, 160, schedule.ProgressOnTrack},
		{"behind below 90 percent", 100, 160, schedule.ProgressBehind},
		{"zero required is behind", 10, 0, schedule.ProgressBehind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := schedule.ComputeMonthlyProgress(tc.worked, tc.required)
			if p.Status != tc.status {
				t.Errorf("expected %s, got %s (%.1f%%)", tc.status, p.Status, p.Percentage)
			}
		})
	}
}
