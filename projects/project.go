// Package projects implements client project tracking. Two billing models
// coexist: presupuesto projects bill a fixed budget, administración projects
// bill worked hours at an hourly rate.
package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// PROJECT
// =============================================================================

// Type selects the billing model.
type Type string

const (
	TypePresupuesto    Type = "presupuesto"
	TypeAdministracion Type = "administracion"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActivo     Status = "activo"
	StatusCompletado Status = "completado"
	StatusPausado    Status = "pausado"
)

// ValidType reports whether t is a known project type.
func ValidType(t Type) bool { return t == TypePresupuesto || t == TypeAdministracion }

// ValidStatus reports whether s is a known project status.
func ValidStatus(s Status) bool {
	return s == StatusActivo || s == StatusCompletado || s == StatusPausado
}

// standardMonthHours is the hour base used to project administración
// revenue when no budget exists.
const standardMonthHours = 160

// Project is one client engagement.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        Type            `json:"type"`
	Budget      decimal.Decimal `json:"budget"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Workers     []Worker        `json:"workers"`
	Expenses    decimal.Decimal `json:"expenses"`
}

// NewProject creates an active project of the given type.
func NewProject(name string, typ Type) Project {
	return Project{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      typ,
		Status:    StatusActivo,
		CreatedAt: time.Now(),
	}
}

// Revenue returns the billable value of the project. Presupuesto projects
// bill the budget; administración projects without one bill the hourly rate
// against a standard 160-hour month.
func (p Project) Revenue() decimal.Decimal {
	if !p.Budget.IsZero() {
		return p.Budget
	}
	if p.Type == TypeAdministracion {
		return p.HourlyRate.Mul(decimal.NewFromInt(standardMonthHours))
	}
	return decimal.Zero
}

// Profit returns revenue minus the project's variable expenses.
func (p Project) Profit() decimal.Decimal {
	return p.Revenue().Sub(p.Expenses)
}

// TotalHours sums hours across all workers of the project.
func (p Project) TotalHours() float64 {
	var total float64
	for _, w := range p.Workers {
		total += w.TotalHours()
	}
	return total
}

// LaborCost sums worker cost. Only administración projects carry an hourly
// labor cost; presupuesto labor is inside the budget.
func (p Project) LaborCost() decimal.Decimal {
	if p.Type != TypeAdministracion {
		return decimal.Zero
	}
	cost := decimal.Zero
	for _, w := range p.Workers {
		cost = cost.Add(w.Cost())
	}
	return cost
}

// =============================================================================
// WORKERS
// =============================================================================

// Worker is one employee assigned to a project, with their agreed rate and
// logged days.
type Worker struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	WorkDays   []WorkDay       `json:"workDays"`
}

// WorkDay is one logged day of project work.
type WorkDay struct {
	Date  schedule.CalendarDate `json:"date"`
	Hours float64               `json:"hours"`
}

// TotalHours sums the worker's logged hours on the project.
func (w Worker) TotalHours() float64 {
	var total float64
	for _, d := range w.WorkDays {
		total += d.Hours
	}
	return total
}

// Cost is the worker's billed labor, hours times rate.
func (w Worker) Cost() decimal.Decimal {
	return decimal.NewFromFloat(w.TotalHours()).Mul(w.HourlyRate)
}

// HoursOn returns the hours the worker logged on the date.
func (w Worker) HoursOn(date schedule.CalendarDate) float64 {
	var total float64
	for _, d := range w.WorkDays {
		if d.Date.Equal(date) {
			total += d.Hours
		}
	}
	return total
}
