/*
line.go - Payroll line arithmetic

PURPOSE:
  One payroll line per employee per month. Every money field is entered by
  hand on the payroll sheet except Total, which is always derived:

    total = gross
          + holiday hours pay
          + overtime hours pay
          - employee social security
          - employer social security
          - income tax withholding
          - overhead coefficient
          - sum of per-diems
          - garnishments
          - sum of advances

  Editing any field recomputes Total from scratch. Total is never accepted
  as an input.

COEFFICIENT:
  The overhead coefficient spreads the fixed monthly expenses evenly over
  the active operarios. Non-operario lines carry a zero coefficient.

  Negative inputs pass through unchanged. The sheet mirrors what the office
  types in, including corrections entered as negatives.

SEE ALSO:
  - expenses/expenses.go: TotalFixed feeds the coefficient
  - roster/employee.go: IsActiveOperario decides who shares it
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/roster"
)

// Slot counts fixed by the paper sheet the app replaced.
const (
	PerDiemSlots = 5
	AdvanceSlots = 3
)

// Line is one employee's payroll row for one month.
type Line struct {
	EmployeeID             string                        `json:"employeeId"`
	Month                  string                        `json:"month"` // "2006-01"
	GrossSalary            decimal.Decimal               `json:"grossSalary"`
	EmployeeSocialSecurity decimal.Decimal               `json:"employeeSocialSecurity"`
	EmployerSocialSecurity decimal.Decimal               `json:"employerSocialSecurity"`
	IncomeTaxWithholding   decimal.Decimal               `json:"incomeTaxWithholding"`
	Garnishments           decimal.Decimal               `json:"garnishments"`
	PerDiems               [PerDiemSlots]decimal.Decimal `json:"perDiems"`
	Advances               [AdvanceSlots]decimal.Decimal `json:"advances"`
	OvertimeHoursPay       decimal.Decimal               `json:"overtimeHoursPay"`
	HolidayHoursPay        decimal.Decimal               `json:"holidayHoursPay"`
	OverheadCoefficient    decimal.Decimal               `json:"overheadCoefficient"`
	Total                  decimal.Decimal               `json:"total"`
}

// MonthKey formats a payroll month key.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// TotalPerDiems sums the per-diem slots.
func (l Line) TotalPerDiems() decimal.Decimal {
	total := decimal.Zero
	for _, d := range l.PerDiems {
		total = total.Add(d)
	}
	return total
}

// TotalAdvances sums the advance slots.
func (l Line) TotalAdvances() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.Advances {
		total = total.Add(a)
	}
	return total
}

// Recompute derives Total from the other fields. Always call it after any
// field edit; the incoming Total is discarded.
func Recompute(l Line) Line {
	l.Total = l.GrossSalary.
		Add(l.HolidayHoursPay).
		Add(l.OvertimeHoursPay).
		Sub(l.EmployeeSocialSecurity).
		Sub(l.EmployerSocialSecurity).
		Sub(l.IncomeTaxWithholding).
		Sub(l.OverheadCoefficient).
		Sub(l.TotalPerDiems()).
		Sub(l.Garnishments).
		Sub(l.TotalAdvances())
	return l
}

// OverheadCoefficient splits the fixed monthly expenses across the active
// operarios. Zero headcount yields a zero coefficient, never a division
// error.
func OverheadCoefficient(totalFixed decimal.Decimal, activeOperarios int) decimal.Decimal {
	if activeOperarios <= 0 {
		return decimal.Zero
	}
	return totalFixed.DivRound(decimal.NewFromInt(int64(activeOperarios)), 2)
}

// =============================================================================
// MONTHLY SHEET
// =============================================================================

// BuildSheet creates the month's payroll sheet, one zeroed line per active
// employee with the coefficient pre-filled for operarios.
func BuildSheet(year int, month time.Month, employees []roster.Employee, fixed []expenses.FixedExpense) []Line {
	operarios := 0
	for _, e := range employees {
		if e.IsActiveOperario() {
			operarios++
		}
	}
	coef := OverheadCoefficient(expenses.TotalFixed(fixed), operarios)

	key := MonthKey(year, month)
	var sheet []Line
	for _, e := range employees {
		if e.Status != roster.StatusActive {
			continue
		}
		l := Line{EmployeeID: e.ID, Month: key}
		if e.IsActiveOperario() {
			l.OverheadCoefficient = coef
		}
		sheet = append(sheet, Recompute(l))
	}
	return sheet
}
