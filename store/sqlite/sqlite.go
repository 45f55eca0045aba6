/*
Package sqlite provides the SQLite-backed session store.

PURPOSE:
  Persists the back-office data set: employees, absences, per-day work
  hours, projects, expenses and payroll lines. The server runs against
  ":memory:" by default, so the store is session state rather than a
  system of record; pointing it at a file path makes it durable without
  code changes.

KEY TABLES:
  employees:         Directory entries
  absences:          Absence requests with approval status
  work_hours:        One row per (employee, date) with recorded hours
  projects:          Project headers, workers embedded as JSON
  fixed_expenses:    Monthly overhead lines
  variable_expenses: Dated one-off purchases
  payroll_lines:     One row per (employee, month)

MONEY:
  Decimal amounts are stored as TEXT and re-parsed on load, so nothing is
  ever rounded by the storage layer.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened in WAL mode so
  readers do not block each other.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/server.go: HTTP surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/payroll"
	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/roster"
	"github.com/warp/backoffice/schedule"
)

// Store is the SQLite-backed session store.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		position TEXT,
		department TEXT,
		hours_per_month REAL NOT NULL DEFAULT 160,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS absences (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		days INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reason TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_absences_employee
		ON absences(employee_id, start_date);

	CREATE TABLE IF NOT EXISTS work_hours (
		employee_id TEXT NOT NULL,
		date TEXT NOT NULL,
		hours REAL NOT NULL,
		PRIMARY KEY (employee_id, date)
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		budget TEXT NOT NULL DEFAULT '0',
		hourly_rate TEXT NOT NULL DEFAULT '0',
		description TEXT,
		status TEXT NOT NULL DEFAULT 'activo',
		expenses TEXT NOT NULL DEFAULT '0',
		workers_json TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fixed_expenses (
		id TEXT PRIMARY KEY,
		concept TEXT NOT NULL,
		amount TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS variable_expenses (
		id TEXT PRIMARY KEY,
		concept TEXT NOT NULL,
		amount TEXT NOT NULL,
		date TEXT NOT NULL,
		note TEXT,
		payment_method TEXT NOT NULL,
		credit_card_number TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_variable_expenses_date
		ON variable_expenses(date);

	CREATE TABLE IF NOT EXISTS payroll_lines (
		employee_id TEXT NOT NULL,
		month TEXT NOT NULL,
		gross_salary TEXT NOT NULL DEFAULT '0',
		employee_ss TEXT NOT NULL DEFAULT '0',
		employer_ss TEXT NOT NULL DEFAULT '0',
		income_tax TEXT NOT NULL DEFAULT '0',
		garnishments TEXT NOT NULL DEFAULT '0',
		per_diems_json TEXT NOT NULL DEFAULT '[]',
		advances_json TEXT NOT NULL DEFAULT '[]',
		overtime_pay TEXT NOT NULL DEFAULT '0',
		holiday_pay TEXT NOT NULL DEFAULT '0',
		coefficient TEXT NOT NULL DEFAULT '0',
		total TEXT NOT NULL DEFAULT '0',
		PRIMARY KEY (employee_id, month)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or updates an employee.
func (s *Store) SaveEmployee(ctx context.Context, emp roster.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employees (id, name, email, phone, position, department, hours_per_month, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			position = excluded.position,
			department = excluded.department,
			hours_per_month = excluded.hours_per_month,
			status = excluded.status
	`

	_, err := s.db.ExecContext(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Phone, emp.Position, emp.Department,
		emp.HoursPerMonth, string(emp.Status),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetEmployee retrieves an employee by ID. Returns nil when not found.
func (s *Store) GetEmployee(ctx context.Context, id string) (*roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emp roster.Employee
	var status string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, position, department, hours_per_month, status FROM employees WHERE id = ?",
		id,
	).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Phone, &emp.Position, &emp.Department, &emp.HoursPerMonth, &status)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	emp.Status = roster.Status(status)
	return &emp, nil
}

// ListEmployees returns all employees ordered by name.
func (s *Store) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, position, department, hours_per_month, status FROM employees ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		var emp roster.Employee
		var status string
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Phone, &emp.Position, &emp.Department, &emp.HoursPerMonth, &status); err != nil {
			return nil, err
		}
		emp.Status = roster.Status(status)
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// DeleteEmployee removes an employee and their dependent rows.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range []string{
		"DELETE FROM work_hours WHERE employee_id = ?",
		"DELETE FROM absences WHERE employee_id = ?",
		"DELETE FROM payroll_lines WHERE employee_id = ?",
		"DELETE FROM employees WHERE id = ?",
	} {
		if _, err := s.db.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// ABSENCES
// =============================================================================

// SaveAbsence inserts or updates an absence request.
func (s *Store) SaveAbsence(ctx context.Context, a roster.Absence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO absences (id, employee_id, kind, start_date, end_date, days, status, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			days = excluded.days,
			status = excluded.status,
			reason = excluded.reason
	`

	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.EmployeeID, string(a.Kind), a.Start.Key(), a.End.Key(),
		a.Days, string(a.Status), a.Reason,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetAbsence retrieves an absence by ID. Returns nil when not found.
func (s *Store) GetAbsence(ctx context.Context, id string) (*roster.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.queryAbsences(ctx, "SELECT id, employee_id, kind, start_date, end_date, days, status, reason FROM absences WHERE id = ?", id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// ListAbsences returns all absences, optionally filtered by employee.
func (s *Store) ListAbsences(ctx context.Context, employeeID string) ([]roster.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if employeeID == "" {
		return s.queryAbsences(ctx, "SELECT id, employee_id, kind, start_date, end_date, days, status, reason FROM absences ORDER BY start_date")
	}
	return s.queryAbsences(ctx,
		"SELECT id, employee_id, kind, start_date, end_date, days, status, reason FROM absences WHERE employee_id = ? ORDER BY start_date",
		employeeID)
}

func (s *Store) queryAbsences(ctx context.Context, query string, args ...any) ([]roster.Absence, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []roster.Absence
	for rows.Next() {
		var a roster.Absence
		var kind, start, end, status string
		if err := rows.Scan(&a.ID, &a.EmployeeID, &kind, &start, &end, &a.Days, &status, &a.Reason); err != nil {
			return nil, err
		}
		a.Kind = roster.Kind(kind)
		a.Status = roster.RequestStatus(status)
		if a.Start, err = schedule.ParseDate(start); err != nil {
			return nil, fmt.Errorf("corrupt absence %s start date: %w", a.ID, err)
		}
		if a.End, err = schedule.ParseDate(end); err != nil {
			return nil, fmt.Errorf("corrupt absence %s end date: %w", a.ID, err)
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// DeleteAbsence removes an absence request.
func (s *Store) DeleteAbsence(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM absences WHERE id = ?", id)
	return err
}

// =============================================================================
// WORK HOURS
// =============================================================================

// SetHours records the hours for one employee and day. Zero hours deletes
// the row, keeping months sparse like the in-memory WorkHours map.
func (s *Store) SetHours(ctx context.Context, employeeID string, date schedule.CalendarDate, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hours == 0 {
		_, err := s.db.ExecContext(ctx,
			"DELETE FROM work_hours WHERE employee_id = ? AND date = ?",
			employeeID, date.Key())
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_hours (employee_id, date, hours)
		VALUES (?, ?, ?)
		ON CONFLICT(employee_id, date) DO UPDATE SET hours = excluded.hours
	`, employeeID, date.Key(), hours)
	return err
}

// GetMonthHours loads one employee's recorded hours for a month.
func (s *Store) GetMonthHours(ctx context.Context, employeeID string, year int, month time.Month) (schedule.WorkHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	from := schedule.StartOfMonth(year, month).Key()
	to := schedule.EndOfMonth(year, month).Key()

	rows, err := s.db.QueryContext(ctx,
		"SELECT date, hours FROM work_hours WHERE employee_id = ? AND date BETWEEN ? AND ?",
		employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wh := make(schedule.WorkHours)
	for rows.Next() {
		var key string
		var hours float64
		if err := rows.Scan(&key, &hours); err != nil {
			return nil, err
		}
		wh[key] = hours
	}
	return wh, rows.Err()
}

// =============================================================================
// PROJECTS
// =============================================================================

// SaveProject inserts or updates a project. Workers travel as a JSON blob;
// they are only ever read back whole.
func (s *Store) SaveProject(ctx context.Context, p projects.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers, err := json.Marshal(p.Workers)
	if err != nil {
		return fmt.Errorf("failed to encode workers: %w", err)
	}

	query := `
		INSERT INTO projects (id, name, type, budget, hourly_rate, description, status, expenses, workers_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			budget = excluded.budget,
			hourly_rate = excluded.hourly_rate,
			description = excluded.description,
			status = excluded.status,
			expenses = excluded.expenses,
			workers_json = excluded.workers_json
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID, p.Name, string(p.Type),
		p.Budget.String(), p.HourlyRate.String(),
		p.Description, string(p.Status), p.Expenses.String(),
		string(workers),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetProject retrieves a project by ID. Returns nil when not found.
func (s *Store) GetProject(ctx context.Context, id string) (*projects.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.queryProjects(ctx, projectSelect+" WHERE id = ?", id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]projects.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryProjects(ctx, projectSelect+" ORDER BY created_at DESC")
}

const projectSelect = "SELECT id, name, type, budget, hourly_rate, description, status, expenses, workers_json, created_at FROM projects"

func (s *Store) queryProjects(ctx context.Context, query string, args ...any) ([]projects.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []projects.Project
	for rows.Next() {
		var p projects.Project
		var typ, budget, rate, status, workers, createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &typ, &budget, &rate, &p.Description, &status, &p.Expenses, &workers, &createdAt); err != nil {
			return nil, err
		}
		p.Type = projects.Type(typ)
		p.Status = projects.Status(status)
		if p.Budget, err = decimal.NewFromString(budget); err != nil {
			return nil, fmt.Errorf("corrupt project %s budget: %w", p.ID, err)
		}
		if p.HourlyRate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("corrupt project %s rate: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(workers), &p.Workers); err != nil {
			return nil, fmt.Errorf("corrupt project %s workers: %w", p.ID, err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		list = append(list, p)
	}
	return list, rows.Err()
}

// DeleteProject removes a project.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	return err
}

// =============================================================================
// EXPENSES
// =============================================================================

// SaveFixedExpense inserts or updates a fixed expense.
func (s *Store) SaveFixedExpense(ctx context.Context, e expenses.FixedExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fixed_expenses (id, concept, amount)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			concept = excluded.concept,
			amount = excluded.amount
	`, e.ID, e.Concept, e.Amount.String())
	return err
}

// ListFixedExpenses returns all fixed expenses.
func (s *Store) ListFixedExpenses(ctx context.Context) ([]expenses.FixedExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, concept, amount FROM fixed_expenses ORDER BY concept")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []expenses.FixedExpense
	for rows.Next() {
		var e expenses.FixedExpense
		var amount string
		if err := rows.Scan(&e.ID, &e.Concept, &amount); err != nil {
			return nil, err
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt fixed expense %s: %w", e.ID, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteFixedExpense removes a fixed expense.
func (s *Store) DeleteFixedExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM fixed_expenses WHERE id = ?", id)
	return err
}

// SaveVariableExpense inserts or updates a variable expense.
func (s *Store) SaveVariableExpense(ctx context.Context, e expenses.VariableExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO variable_expenses (id, concept, amount, date, note, payment_method, credit_card_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			concept = excluded.concept,
			amount = excluded.amount,
			date = excluded.date,
			note = excluded.note,
			payment_method = excluded.payment_method,
			credit_card_number = excluded.credit_card_number
	`, e.ID, e.Concept, e.Amount.String(), e.Date.Key(), e.Note, string(e.PaymentMethod), e.CreditCardNumber)
	return err
}

// ListVariableExpenses returns all variable expenses, newest first.
func (s *Store) ListVariableExpenses(ctx context.Context) ([]expenses.VariableExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, concept, amount, date, note, payment_method, credit_card_number FROM variable_expenses ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []expenses.VariableExpense
	for rows.Next() {
		var e expenses.VariableExpense
		var amount, date, method string
		if err := rows.Scan(&e.ID, &e.Concept, &amount, &date, &e.Note, &method, &e.CreditCardNumber); err != nil {
			return nil, err
		}
		e.PaymentMethod = expenses.PaymentMethod(method)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt variable expense %s: %w", e.ID, err)
		}
		if e.Date, err = schedule.ParseDate(date); err != nil {
			return nil, fmt.Errorf("corrupt variable expense %s date: %w", e.ID, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteVariableExpense removes a variable expense.
func (s *Store) DeleteVariableExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM variable_expenses WHERE id = ?", id)
	return err
}

// =============================================================================
// PAYROLL LINES
// =============================================================================

// SavePayrollLine inserts or updates one line of the monthly sheet.
func (s *Store) SavePayrollLine(ctx context.Context, l payroll.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	perDiems, err := json.Marshal(l.PerDiems)
	if err != nil {
		return fmt.Errorf("failed to encode per-diems: %w", err)
	}
	advances, err := json.Marshal(l.Advances)
	if err != nil {
		return fmt.Errorf("failed to encode advances: %w", err)
	}

	query := `
		INSERT INTO payroll_lines (employee_id, month, gross_salary, employee_ss, employer_ss,
			income_tax, garnishments, per_diems_json, advances_json, overtime_pay, holiday_pay,
			coefficient, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, month) DO UPDATE SET
			gross_salary = excluded.gross_salary,
			employee_ss = excluded.employee_ss,
			employer_ss = excluded.employer_ss,
			income_tax = excluded.income_tax,
			garnishments = excluded.garnishments,
			per_diems_json = excluded.per_diems_json,
			advances_json = excluded.advances_json,
			overtime_pay = excluded.overtime_pay,
			holiday_pay = excluded.holiday_pay,
			coefficient = excluded.coefficient,
			total = excluded.total
	`

	_, err = s.db.ExecContext(ctx, query,
		l.EmployeeID, l.Month,
		l.GrossSalary.String(), l.EmployeeSocialSecurity.String(), l.EmployerSocialSecurity.String(),
		l.IncomeTaxWithholding.String(), l.Garnishments.String(),
		string(perDiems), string(advances),
		l.OvertimeHoursPay.String(), l.HolidayHoursPay.String(),
		l.OverheadCoefficient.String(), l.Total.String(),
	)
	return err
}

// GetPayrollLine retrieves one line. Returns nil when not found.
func (s *Store) GetPayrollLine(ctx context.Context, employeeID, month string) (*payroll.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, err := s.queryPayrollLines(ctx, payrollSelect+" WHERE employee_id = ? AND month = ?", employeeID, month)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// GetPayrollSheet returns every line of one month.
func (s *Store) GetPayrollSheet(ctx context.Context, month string) ([]payroll.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryPayrollLines(ctx, payrollSelect+" WHERE month = ?", month)
}

const payrollSelect = `SELECT employee_id, month, gross_salary, employee_ss, employer_ss,
	income_tax, garnishments, per_diems_json, advances_json, overtime_pay, holiday_pay,
	coefficient, total FROM payroll_lines`

func (s *Store) queryPayrollLines(ctx context.Context, query string, args ...any) ([]payroll.Line, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []payroll.Line
	for rows.Next() {
		var l payroll.Line
		var gross, empSS, erSS, tax, garnish, perDiems, advances, overtime, holiday, coef, total string
		if err := rows.Scan(&l.EmployeeID, &l.Month, &gross, &empSS, &erSS, &tax, &garnish,
			&perDiems, &advances, &overtime, &holiday, &coef, &total); err != nil {
			return nil, err
		}

		fields := []struct {
			raw string
			dst *decimal.Decimal
		}{
			{gross, &l.GrossSalary}, {empSS, &l.EmployeeSocialSecurity}, {erSS, &l.EmployerSocialSecurity},
			{tax, &l.IncomeTaxWithholding}, {garnish, &l.Garnishments},
			{overtime, &l.OvertimeHoursPay}, {holiday, &l.HolidayHoursPay},
			{coef, &l.OverheadCoefficient}, {total, &l.Total},
		}
		for _, f := range fields {
			if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
				return nil, fmt.Errorf("corrupt payroll line %s/%s: %w", l.EmployeeID, l.Month, err)
			}
		}
		if err := json.Unmarshal([]byte(perDiems), &l.PerDiems); err != nil {
			return nil, fmt.Errorf("corrupt payroll line %s/%s per-diems: %w", l.EmployeeID, l.Month, err)
		}
		if err := json.Unmarshal([]byte(advances), &l.Advances); err != nil {
			return nil, fmt.Errorf("corrupt payroll line %s/%s advances: %w", l.EmployeeID, l.Month, err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// =============================================================================
// RESET
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{
		"employees", "absences", "work_hours", "projects",
		"fixed_expenses", "variable_expenses", "payroll_lines",
	} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
