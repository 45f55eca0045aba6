/*
stats.go - Monthly work-stats calculator

PURPOSE:
  Computes the per-employee monthly summary shown next to the hour calendar:
  working-day count, expected hours, total hours worked, overtime, laboral
  hours, and (when project rates are wired in) gross profit from
  administración-type project work.

DAY CLASSIFICATION:
  workDays     weekdays (Mon-Fri) that are not holidays. Saturdays are NEVER
               expected working days, even though the calendar renders them
               as editable 0-hour cells.
  totalHours   every recorded entry counts, including weekends, holidays and
               absence days.
  laboralHours everything except holidays and Sundays. Saturdays DO count
               here. The Saturday asymmetry against workDays is intentional
               and pinned by tests.
  grossProfit  only days with recorded hours, no holiday and no approved
               absence, where a project rate resolves.

DERIVATION:
  expectedHours = workDays * 8
  overtime      = max(0, totalHours - expectedHours)

  MonthlyStats is recomputed from scratch whenever any input changes and is
  never persisted.

SEE ALSO:
  - holiday.go: HolidayCalendar injected here
  - roster/absence.go: AbsenceLookup implementation
  - projects/profit.go: ProjectRateLookup implementation
*/
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardDayHours is the expected workload of one working day.
const StandardDayHours = 8.0

// =============================================================================
// MONTHLY STATS
// =============================================================================

// MonthlyStats is the derived summary for one employee and one month.
type MonthlyStats struct {
	WorkDays      int
	ExpectedHours float64
	TotalHours    float64
	Overtime      float64
	LaboralHours  float64
	GrossProfit   decimal.Decimal
}

// =============================================================================
// LOOKUP HOOKS - Injected by the roster and projects domains
// =============================================================================

// AbsenceLookup reports whether the employee has an approved absence covering
// the date. The stats calculator only needs presence; the absence kind and
// its imputed default hours are roster concerns applied upstream.
type AbsenceLookup func(date CalendarDate) bool

// ProjectRateLookup resolves the hours assigned to the employee on a project
// for the date and the project's hourly rate. ok is false when the employee
// has no rated project work that day.
type ProjectRateLookup func(date CalendarDate) (hours float64, rate decimal.Decimal, ok bool)

// StatsOption configures optional inputs of ComputeMonthlyStats.
type StatsOption func(*statsConfig)

type statsConfig struct {
	absence AbsenceLookup
	rate    ProjectRateLookup
}

// WithAbsences wires an approved-absence lookup into the calculation.
func WithAbsences(lookup AbsenceLookup) StatsOption {
	return func(c *statsConfig) { c.absence = lookup }
}

// WithProjectRates wires a project-rate lookup, enabling gross profit.
func WithProjectRates(lookup ProjectRateLookup) StatsOption {
	return func(c *statsConfig) { c.rate = lookup }
}

// =============================================================================
// CALCULATOR
// =============================================================================

// ComputeMonthlyStats walks every day of the month and classifies it.
// Months are 1-based time.Month. The hours mapping may be empty.
func ComputeMonthlyStats(year int, month time.Month, hours WorkHours, cal HolidayCalendar, opts ...StatsOption) MonthlyStats {
	var cfg statsConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cal == nil {
		cal = NoHolidays{}
	}

	var stats MonthlyStats
	stats.GrossProfit = decimal.Zero

	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := NewDate(year, month, day)
		worked := hours.Get(date)
		isHoliday := cal.IsHoliday(date)

		// Expected working days: weekdays that are not holidays.
		if !date.IsWeekend() && !isHoliday {
			stats.WorkDays++
		}

		// Recorded hours always count, whatever the day is.
		stats.TotalHours += worked

		// Laboral hours: everything but holidays and Sundays.
		if !isHoliday && !date.IsSunday() {
			stats.LaboralHours += worked
		}

		// Gross profit: rated project work on a regular worked day.
		if worked > 0 && !isHoliday && !(cfg.absence != nil && cfg.absence(date)) {
			if cfg.rate != nil {
				if projectHours, rate, ok := cfg.rate(date); ok {
					stats.GrossProfit = stats.GrossProfit.Add(
						decimal.NewFromFloat(projectHours).Mul(rate))
				}
			}
		}
	}

	stats.ExpectedHours = float64(stats.WorkDays) * StandardDayHours
	if stats.TotalHours > stats.ExpectedHours {
		stats.Overtime = stats.TotalHours - stats.ExpectedHours
	}
	return stats
}

// =============================================================================
// MONTHLY PROGRESS - Hours worked vs. contracted hours
// =============================================================================

type ProgressStatus string

const (
	ProgressAhead   ProgressStatus = "ahead"
	ProgressOnTrack ProgressStatus = "on-track"
	ProgressBehind  ProgressStatus = "behind"
)

// MonthlyProgress compares worked hours against an employee's contracted
// monthly hours. Above 105% is ahead, below 90% is behind.
type MonthlyProgress struct {
	RequiredHours float64
	WorkedHours   float64
	Percentage    float64
	Status        ProgressStatus
}

func ComputeMonthlyProgress(worked, required float64) MonthlyProgress {
	p := MonthlyProgress{RequiredHours: required, WorkedHours: worked, Status: ProgressOnTrack}
	if required > 0 {
		p.Percentage = worked / required * 100
	}
	switch {
	case p.Percentage > 105:
		p.Status = ProgressAhead
	case p.Percentage < 90:
		p.Status = ProgressBehind
	}
	return p
}
