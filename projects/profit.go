/*
profit.go - Project-rate resolution for gross profit

PURPOSE:
  Bridges project worker assignments into the stats calculator. For an
  employee and a date, finds the administración project work logged under
  the employee's name and returns the hours and the worker's hourly rate.

MATCHING:
  Workers are attached to projects by name, not employee ID. That mirrors
  how assignments are entered in the projects screen, where free-text
  worker names predate the roster.

SEE ALSO:
  - schedule/stats.go: ProjectRateLookup consumed by ComputeMonthlyStats
*/
package projects

import (
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/schedule"
)

// RateLookup returns a per-date resolver of rated project work for one
// employee, scanning administración projects only. When the employee worked
// several projects the same day, the first match wins.
func RateLookup(employeeName string, all []Project) schedule.ProjectRateLookup {
	return func(date schedule.CalendarDate) (float64, decimal.Decimal, bool) {
		for _, p := range all {
			if p.Type != TypeAdministracion {
				continue
			}
			for _, w := range p.Workers {
				if w.Name != employeeName {
					continue
				}
				if h := w.HoursOn(date); h > 0 {
					rate := w.HourlyRate
					if rate.IsZero() {
						rate = p.HourlyRate
					}
					return h, rate, true
				}
			}
		}
		return 0, decimal.Zero, false
	}
}
