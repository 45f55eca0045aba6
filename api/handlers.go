/*
handlers.go - HTTP API handlers for the back-office

PURPOSE:
  Exposes the back-office over REST. Handles HTTP request/response, JSON
  serialization, and delegates to the domain packages.

ENDPOINTS:
  Employees:
    GET    /api/employees                 List all employees
    POST   /api/employees                 Create employee
    GET    /api/employees/{id}            Get employee details
    PUT    /api/employees/{id}            Update employee
    DELETE /api/employees/{id}            Remove employee

  Calendar:
    GET    /api/employees/{id}/hours      Month's recorded hours
    PUT    /api/employees/{id}/hours      Record one day (0 clears)
    GET    /api/employees/{id}/stats      Monthly stats + progress

  Absences:
    GET    /api/absences                  List (``?employee=`` filter)
    POST   /api/absences                  Submit request
    POST   /api/absences/{id}/approve     Approve (imputes hours)
    POST   /api/absences/{id}/reject      Reject
    DELETE /api/absences/{id}             Remove

  Holidays:
    GET    /api/holidays?year             Year's holidays by jurisdiction

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - seed.go: Demo data loader
*/
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/roster"
	"github.com/warp/backoffice/schedule"
	"github.com/warp/backoffice/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Calendar schedule.HolidayCalendar
}

// NewHandler wires the store and the holiday calendar into a handler set.
func NewHandler(store *sqlite.Store, cal schedule.HolidayCalendar) *Handler {
	return &Handler{Store: store, Calendar: cal}
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}
	if employees == nil {
		employees = []roster.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

// CreateEmployee creates a new employee.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	emp := roster.NewEmployee(req.Name, req.Email, req.Position, req.Department)
	emp.Phone = req.Phone
	if req.HoursPerMonth > 0 {
		emp.HoursPerMonth = req.HoursPerMonth
	}
	if req.Status != "" {
		emp.Status = roster.Status(req.Status)
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save employee", err)
		return
	}
	log.Info().Str("employee", emp.ID).Str("name", emp.Name).Msg("employee created")
	writeJSON(w, http.StatusCreated, emp)
}

// GetEmployee returns one employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// UpdateEmployee updates an existing employee.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	var req EmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	emp.Name = req.Name
	emp.Email = req.Email
	emp.Phone = req.Phone
	emp.Position = req.Position
	emp.Department = req.Department
	if req.HoursPerMonth > 0 {
		emp.HoursPerMonth = req.HoursPerMonth
	}
	if req.Status != "" {
		emp.Status = roster.Status(req.Status)
	}

	if err := h.Store.SaveEmployee(r.Context(), *emp); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// DeleteEmployee removes an employee and their calendar data.
// DELETE /api/employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete employee", err)
		return
	}
	log.Info().Str("employee", id).Msg("employee deleted")
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// WORK-HOUR CALENDAR ENDPOINTS
// =============================================================================

// GetHours returns one employee's recorded hours for a month.
// GET /api/employees/{id}/hours?year=2025&month=6
func (h *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month selection", err)
		return
	}

	hours, err := h.Store.GetMonthHours(r.Context(), chi.URLParam(r, "id"), year, time.Month(month))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load hours", err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

// SetHours records the hours of one calendar day. Zero clears the cell.
// PUT /api/employees/{id}/hours
func (h *Handler) SetHours(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	var req SetHoursRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}

	if err := h.Store.SetHours(r.Context(), id, date, req.Hours); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record hours", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date.Key(), "hours": req.Hours})
}

// GetStats returns the derived monthly stats for one employee, including
// gross profit from administración project work and contract progress.
// GET /api/employees/{id}/stats?year=2025&month=6
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	year, month, err := yearMonthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month selection", err)
		return
	}

	emp, err := h.Store.GetEmployee(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	hours, err := h.Store.GetMonthHours(ctx, id, year, time.Month(month))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load hours", err)
		return
	}
	absences, err := h.Store.ListAbsences(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load absences", err)
		return
	}
	allProjects, err := h.Store.ListProjects(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load projects", err)
		return
	}

	idx := roster.BuildAbsenceIndex(id, absences)
	stats := schedule.ComputeMonthlyStats(year, time.Month(month), hours, h.Calendar,
		schedule.WithAbsences(idx.Lookup),
		schedule.WithProjectRates(projects.RateLookup(emp.Name, allProjects)),
	)
	progress := schedule.ComputeMonthlyProgress(stats.TotalHours, emp.HoursPerMonth)

	writeJSON(w, http.StatusOK, map[string]any{
		"employeeId":    id,
		"year":          year,
		"month":         month,
		"workDays":      stats.WorkDays,
		"expectedHours": stats.ExpectedHours,
		"totalHours":    stats.TotalHours,
		"overtime":      stats.Overtime,
		"laboralHours":  stats.LaboralHours,
		"grossProfit":   stats.GrossProfit,
		"progress":      progress,
	})
}

// =============================================================================
// ABSENCE ENDPOINTS
// =============================================================================

// ListAbsences returns absences, optionally filtered by ?employee=.
// GET /api/absences
func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.Store.ListAbsences(r.Context(), r.URL.Query().Get("employee"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list absences", err)
		return
	}
	if absences == nil {
		absences = []roster.Absence{}
	}
	writeJSON(w, http.StatusOK, absences)
}

// CreateAbsence submits a new absence request.
// POST /api/absences
func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req AbsenceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	emp, err := h.Store.GetEmployee(r.Context(), req.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	start, err := schedule.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start date", err)
		return
	}
	end, err := schedule.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end date", err)
		return
	}

	absence, err := roster.NewAbsence(req.EmployeeID, roster.Kind(req.Kind), start, end, req.Reason)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid absence", err)
		return
	}

	if err := h.Store.SaveAbsence(r.Context(), absence); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save absence", err)
		return
	}
	writeJSON(w, http.StatusCreated, absence)
}

// ApproveAbsence approves a pending absence and imputes default hours on
// the covered working days that have none recorded.
// POST /api/absences/{id}/approve
func (h *Handler) ApproveAbsence(w http.ResponseWriter, r *http.Request) {
	h.resolveAbsence(w, r, roster.RequestApproved)
}

// RejectAbsence rejects a pending absence.
// POST /api/absences/{id}/reject
func (h *Handler) RejectAbsence(w http.ResponseWriter, r *http.Request) {
	h.resolveAbsence(w, r, roster.RequestRejected)
}

func (h *Handler) resolveAbsence(w http.ResponseWriter, r *http.Request, status roster.RequestStatus) {
	ctx := r.Context()
	absence, err := h.Store.GetAbsence(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load absence", err)
		return
	}
	if absence == nil {
		writeError(w, http.StatusNotFound, "absence not found", nil)
		return
	}

	absence.Status = status
	if err := h.Store.SaveAbsence(ctx, *absence); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save absence", err)
		return
	}

	if status == roster.RequestApproved {
		if err := h.imputeAbsenceHours(ctx, *absence); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to impute hours", err)
			return
		}
	}

	log.Info().Str("absence", absence.ID).Str("status", string(status)).Msg("absence resolved")
	writeJSON(w, http.StatusOK, absence)
}

// imputeAbsenceHours fills the calendar with the kind's default hours on
// every covered working day that has no entry yet.
func (h *Handler) imputeAbsenceHours(ctx context.Context, a roster.Absence) error {
	imputed := roster.ImputedHours(a.Kind)
	if imputed == 0 {
		return nil
	}

	for d := a.Start; d.BeforeOrEqual(a.End); d = d.AddDays(1) {
		if d.IsWeekend() || h.Calendar.IsHoliday(d) {
			continue
		}
		month, err := h.Store.GetMonthHours(ctx, a.EmployeeID, d.Year(), d.Month())
		if err != nil {
			return err
		}
		if month.Has(d) {
			continue
		}
		if err := h.Store.SetHours(ctx, a.EmployeeID, d, imputed); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAbsence removes an absence request.
// DELETE /api/absences/{id}
func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteAbsence(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete absence", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

// ListHolidays returns the year's holidays split by jurisdiction.
// GET /api/holidays?year=2025
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().Year()
	}

	resp := HolidaysResponse{Year: year}
	for _, hol := range h.Calendar.NationalHolidays(year) {
		resp.National = append(resp.National, DatedDTO{Date: hol.Date.Key(), Name: hol.Name})
	}
	for _, hol := range h.Calendar.RegionalHolidays(year) {
		resp.Regional = append(resp.Regional, DatedDTO{Date: hol.Date.Key(), Name: hol.Name})
	}
	for _, hol := range h.Calendar.AllHolidays(year) {
		resp.All = append(resp.All, DatedDTO{Date: hol.Date.Key(), Name: hol.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}
