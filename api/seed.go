/*
seed.go - Demo data loader

PURPOSE:
  Populates the store with a small, deterministic company so the app has
  something to show on first run: four employees (three active operarios),
  the 1650/month fixed overhead, two projects and a handful of absences
  and logged hours.

  The loader resets the database first, so calling it twice is safe.

SEE ALSO:
  - server.go: Exposed as POST /api/seed and run at startup when
    BACKOFFICE_SEED is set
*/
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/roster"
	"github.com/warp/backoffice/schedule"
)

// SeedDemoData resets the store and loads the demo company.
// POST /api/seed
func (h *Handler) SeedDemoData(w http.ResponseWriter, r *http.Request) {
	if err := h.LoadDemoData(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed demo data", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "seeded"})
}

// LoadDemoData wipes the store and inserts the demo company.
func (h *Handler) LoadDemoData(ctx context.Context) error {
	if err := h.Store.Reset(ctx); err != nil {
		return err
	}

	// Employees. Three active operarios share the overhead coefficient.
	juan := roster.NewEmployee("Juan Pérez", "juan@taller.example", "Soldador", roster.DepartmentOperario)
	maria := roster.NewEmployee("María García", "maria@taller.example", "Tornera", roster.DepartmentOperario)
	carlos := roster.NewEmployee("Carlos López", "carlos@taller.example", "Montador", roster.DepartmentOperario)
	ana := roster.NewEmployee("Ana Martín", "ana@taller.example", "Contable", "Administración")
	for _, e := range []roster.Employee{juan, maria, carlos, ana} {
		if err := h.Store.SaveEmployee(ctx, e); err != nil {
			return err
		}
	}

	// Fixed overhead: 1200 + 300 + 150 = 1650, so the coefficient over the
	// three operarios lands on exactly 550.00.
	for concept, amount := range map[string]int64{
		"Alquiler nave": 1200,
		"Luz":           300,
		"Seguro":        150,
	} {
		e, err := expenses.NewFixedExpense(concept, decimal.NewFromInt(amount))
		if err != nil {
			return err
		}
		if err := h.Store.SaveFixedExpense(ctx, e); err != nil {
			return err
		}
	}

	// A month of hours for Juan: 8h on every June 2025 working day.
	for day := 1; day <= schedule.DaysInMonth(2025, time.June); day++ {
		d := schedule.NewDate(2025, time.June, day)
		if d.IsWeekend() || h.Calendar.IsHoliday(d) {
			continue
		}
		if err := h.Store.SetHours(ctx, juan.ID, d, 8); err != nil {
			return err
		}
	}

	// Absences: an approved vacation for María, a pending sick leave for Carlos.
	vacation, err := roster.NewAbsence(maria.ID, roster.KindVacation,
		schedule.NewDate(2025, time.June, 16), schedule.NewDate(2025, time.June, 20), "vacaciones de junio")
	if err != nil {
		return err
	}
	vacation.Status = roster.RequestApproved
	sick, err := roster.NewAbsence(carlos.ID, roster.KindSick,
		schedule.NewDate(2025, time.June, 24), schedule.NewDate(2025, time.June, 25), "gripe")
	if err != nil {
		return err
	}
	for _, a := range []roster.Absence{vacation, sick} {
		if err := h.Store.SaveAbsence(ctx, a); err != nil {
			return err
		}
	}

	// Projects: one fixed-budget job and one administración contract with
	// Juan's rated hours on it.
	nave := projects.NewProject("Estructura nave Almussafes", projects.TypePresupuesto)
	nave.Budget = decimal.NewFromInt(45000)
	nave.Description = "Fabricación y montaje de estructura metálica"
	nave.Expenses = decimal.NewFromInt(5200)

	mantenimiento := projects.NewProject("Mantenimiento planta Sagunto", projects.TypeAdministracion)
	mantenimiento.HourlyRate = decimal.NewFromFloat(32.5)
	mantenimiento.Workers = []projects.Worker{{
		ID:         uuid.NewString(),
		Name:       juan.Name,
		HourlyRate: decimal.NewFromFloat(32.5),
		WorkDays: []projects.WorkDay{
			{Date: schedule.NewDate(2025, time.June, 2), Hours: 8},
			{Date: schedule.NewDate(2025, time.June, 3), Hours: 8},
			{Date: schedule.NewDate(2025, time.June, 4), Hours: 6},
		},
	}}
	for _, p := range []projects.Project{nave, mantenimiento} {
		if err := h.Store.SaveProject(ctx, p); err != nil {
			return err
		}
	}

	// A couple of variable expenses.
	material, err := expenses.NewVariableExpense("Material soldadura",
		decimal.NewFromFloat(340.75), schedule.NewDate(2025, time.June, 5), expenses.PayCard, "4312")
	if err != nil {
		return err
	}
	gasoil, err := expenses.NewVariableExpense("Gasoil furgoneta",
		decimal.NewFromInt(85), schedule.NewDate(2025, time.June, 12), expenses.PayCash, "")
	if err != nil {
		return err
	}
	for _, e := range []expenses.VariableExpense{material, gasoil} {
		if err := h.Store.SaveVariableExpense(ctx, e); err != nil {
			return err
		}
	}

	log.Info().Msg("demo data loaded")
	return nil
}
