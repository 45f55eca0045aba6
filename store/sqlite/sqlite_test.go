package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/payroll"
	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/roster"
	"github.com/warp/backoffice/schedule"
	"github.com/warp/backoffice/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmployeeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	emp := roster.NewEmployee("Juan Pérez", "juan@example.com", "Soldador", roster.DepartmentOperario)
	require.NoError(t, store.SaveEmployee(ctx, emp))

	got, err := store.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, emp, *got)

	// Upsert updates in place.
	emp.Status = roster.StatusVacation
	require.NoError(t, store.SaveEmployee(ctx, emp))
	got, err = store.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.StatusVacation, got.Status)

	missing, err := store.GetEmployee(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteEmployee_CascadesDependents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	emp := roster.NewEmployee("María García", "maria@example.com", "Tornera", roster.DepartmentOperario)
	require.NoError(t, store.SaveEmployee(ctx, emp))

	day := schedule.NewDate(2025, time.June, 2)
	require.NoError(t, store.SetHours(ctx, emp.ID, day, 8))
	a, err := roster.NewAbsence(emp.ID, roster.KindVacation, day, day, "")
	require.NoError(t, err)
	require.NoError(t, store.SaveAbsence(ctx, a))

	require.NoError(t, store.DeleteEmployee(ctx, emp.ID))

	hours, err := store.GetMonthHours(ctx, emp.ID, 2025, time.June)
	require.NoError(t, err)
	assert.Empty(t, hours)
	absences, err := store.ListAbsences(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, absences)
}

func TestAbsenceRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	start := schedule.NewDate(2025, time.August, 1)
	a, err := roster.NewAbsence("emp-1", roster.KindVacation, start, start.AddDays(14), "verano")
	require.NoError(t, err)
	require.NoError(t, store.SaveAbsence(ctx, a))

	got, err := store.GetAbsence(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a, *got)

	// Approval is an upsert of the same row.
	a.Status = roster.RequestApproved
	require.NoError(t, store.SaveAbsence(ctx, a))
	got, err = store.GetAbsence(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, roster.RequestApproved, got.Status)
}

func TestWorkHours(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	jun2 := schedule.NewDate(2025, time.June, 2)
	jul1 := schedule.NewDate(2025, time.July, 1)
	require.NoError(t, store.SetHours(ctx, "emp-1", jun2, 8))
	require.NoError(t, store.SetHours(ctx, "emp-1", jun2.AddDays(1), 6))
	require.NoError(t, store.SetHours(ctx, "emp-1", jul1, 4))
	require.NoError(t, store.SetHours(ctx, "emp-2", jun2, 5))

	june, err := store.GetMonthHours(ctx, "emp-1", 2025, time.June)
	require.NoError(t, err)
	assert.Len(t, june, 2, "other months and employees are filtered out")
	assert.Equal(t, 8.0, june.Get(jun2))

	// Overwrite, then clear with zero.
	require.NoError(t, store.SetHours(ctx, "emp-1", jun2, 7.5))
	require.NoError(t, store.SetHours(ctx, "emp-1", jun2.AddDays(1), 0))

	june, err = store.GetMonthHours(ctx, "emp-1", 2025, time.June)
	require.NoError(t, err)
	assert.Len(t, june, 1)
	assert.Equal(t, 7.5, june.Get(jun2))
}

func TestProjectRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := projects.NewProject("Mantenimiento naves", projects.TypeAdministracion)
	p.HourlyRate = decimal.NewFromFloat(32.5)
	p.Workers = []projects.Worker{{
		ID:         "w-1",
		Name:       "Carlos López",
		HourlyRate: decimal.NewFromInt(22),
		WorkDays:   []projects.WorkDay{{Date: schedule.NewDate(2025, time.June, 2), Hours: 8}},
	}}
	require.NoError(t, store.SaveProject(ctx, p))

	got, err := store.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, got.HourlyRate.Equal(p.HourlyRate))
	require.Len(t, got.Workers, 1)
	assert.Equal(t, "Carlos López", got.Workers[0].Name)
	assert.Equal(t, 8.0, got.Workers[0].TotalHours())
}

func TestExpensesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fixed, err := expenses.NewFixedExpense("Alquiler", decimal.NewFromInt(1200))
	require.NoError(t, err)
	require.NoError(t, store.SaveFixedExpense(ctx, fixed))

	list, err := store.ListFixedExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.NewFromInt(1200)))

	v, err := expenses.NewVariableExpense("Material", decimal.NewFromFloat(89.9),
		schedule.NewDate(2025, time.June, 5), expenses.PayCard, "4242")
	require.NoError(t, err)
	require.NoError(t, store.SaveVariableExpense(ctx, v))

	vars, err := store.ListVariableExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, v, vars[0])
}

func TestPayrollLineRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	line := payroll.Line{
		EmployeeID:           "emp-1",
		Month:                "2025-06",
		GrossSalary:          decimal.NewFromInt(1800),
		IncomeTaxWithholding: decimal.NewFromInt(270),
		OverheadCoefficient:  decimal.NewFromInt(550),
	}
	line.PerDiems[2] = decimal.NewFromFloat(12.5)
	line.Advances[0] = decimal.NewFromInt(100)
	line = payroll.Recompute(line)

	require.NoError(t, store.SavePayrollLine(ctx, line))

	got, err := store.GetPayrollLine(ctx, "emp-1", "2025-06")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Total.Equal(line.Total), "got %s want %s", got.Total, line.Total)
	assert.True(t, got.PerDiems[2].Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, got.Advances[0].Equal(decimal.NewFromInt(100)))

	sheet, err := store.GetPayrollSheet(ctx, "2025-06")
	require.NoError(t, err)
	assert.Len(t, sheet, 1)

	empty, err := store.GetPayrollSheet(ctx, "2025-07")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	emp := roster.NewEmployee("Ana Martín", "ana@example.com", "Contable", "Administración")
	require.NoError(t, store.SaveEmployee(ctx, emp))
	require.NoError(t, store.Reset(ctx))

	list, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
