package projects

import "github.com/shopspring/decimal"

// =============================================================================
// PORTFOLIO AGGREGATES - Dashboard and financial summary
// =============================================================================

// Summary is the portfolio roll-up shown on the dashboard.
type Summary struct {
	Total          int             `json:"total"`
	Active         int             `json:"active"`
	Completed      int             `json:"completed"`
	Paused         int             `json:"paused"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalHours     float64         `json:"totalHours"`
	TotalLaborCost decimal.Decimal `json:"totalLaborCost"`
}

// Summarize rolls up every project into the dashboard figures.
func Summarize(all []Project) Summary {
	s := Summary{
		TotalRevenue:   decimal.Zero,
		TotalExpenses:  decimal.Zero,
		TotalProfit:    decimal.Zero,
		TotalLaborCost: decimal.Zero,
	}
	for _, p := range all {
		s.Total++
		switch p.Status {
		case StatusActivo:
			s.Active++
		case StatusCompletado:
			s.Completed++
		case StatusPausado:
			s.Paused++
		}
		s.TotalRevenue = s.TotalRevenue.Add(p.Revenue())
		s.TotalExpenses = s.TotalExpenses.Add(p.Expenses)
		s.TotalProfit = s.TotalProfit.Add(p.Profit())
		s.TotalHours += p.TotalHours()
		s.TotalLaborCost = s.TotalLaborCost.Add(p.LaborCost())
	}
	return s
}
