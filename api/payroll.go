package api

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/payroll"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// monthParam reads and checks the ?month=2006-01 query parameter.
func monthParam(r *http.Request) (string, int, time.Month, error) {
	key := r.URL.Query().Get("month")
	if !monthKeyPattern.MatchString(key) {
		return "", 0, 0, fmt.Errorf("month must look like 2025-06, got %q", key)
	}
	var year, month int
	fmt.Sscanf(key, "%d-%d", &year, &month)
	return key, year, time.Month(month), nil
}

// =============================================================================
// PAYROLL ENDPOINTS
// =============================================================================

// GetPayrollSheet returns the month's sheet, creating missing lines for
// active employees with the coefficient pre-filled.
// GET /api/payroll?month=2025-06
func (h *Handler) GetPayrollSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key, year, month, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}

	stored, err := h.Store.GetPayrollSheet(ctx, key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load payroll sheet", err)
		return
	}
	existing := make(map[string]bool, len(stored))
	for _, l := range stored {
		existing[l.EmployeeID] = true
	}

	employees, err := h.Store.ListEmployees(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}
	fixed, err := h.Store.ListFixedExpenses(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list fixed expenses", err)
		return
	}

	// Fill the gaps the way the sheet initializes on screen.
	for _, l := range payroll.BuildSheet(year, month, employees, fixed) {
		if existing[l.EmployeeID] {
			continue
		}
		if err := h.Store.SavePayrollLine(ctx, l); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to initialize payroll line", err)
			return
		}
		stored = append(stored, l)
	}
	if stored == nil {
		stored = []payroll.Line{}
	}
	writeJSON(w, http.StatusOK, stored)
}

// UpdatePayrollLine edits the manual fields of one line and recomputes its
// total. Omitted fields keep their stored value.
// PUT /api/payroll/{employeeID}?month=2025-06
func (h *Handler) UpdatePayrollLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := chi.URLParam(r, "employeeID")

	key, _, _, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}

	line, err := h.Store.GetPayrollLine(ctx, employeeID, key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load payroll line", err)
		return
	}
	if line == nil {
		writeError(w, http.StatusNotFound, "payroll line not found; load the sheet first", nil)
		return
	}

	var req PayrollLineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := applyLineEdits(line, req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err)
		return
	}

	*line = payroll.Recompute(*line)
	if err := h.Store.SavePayrollLine(ctx, *line); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save payroll line", err)
		return
	}
	log.Info().Str("employee", employeeID).Str("month", key).Str("total", line.Total.String()).
		Msg("payroll line recomputed")
	writeJSON(w, http.StatusOK, line)
}

func applyLineEdits(line *payroll.Line, req PayrollLineRequest) error {
	set := func(dst *decimal.Decimal, raw string) error {
		if raw == "" {
			return nil
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	if err := set(&line.GrossSalary, req.GrossSalary); err != nil {
		return err
	}
	if err := set(&line.EmployeeSocialSecurity, req.EmployeeSocialSecurity); err != nil {
		return err
	}
	if err := set(&line.EmployerSocialSecurity, req.EmployerSocialSecurity); err != nil {
		return err
	}
	if err := set(&line.IncomeTaxWithholding, req.IncomeTaxWithholding); err != nil {
		return err
	}
	if err := set(&line.Garnishments, req.Garnishments); err != nil {
		return err
	}
	if err := set(&line.OvertimeHoursPay, req.OvertimeHoursPay); err != nil {
		return err
	}
	if err := set(&line.HolidayHoursPay, req.HolidayHoursPay); err != nil {
		return err
	}
	for i, raw := range req.PerDiems {
		if i >= payroll.PerDiemSlots {
			break
		}
		if err := set(&line.PerDiems[i], raw); err != nil {
			return err
		}
	}
	for i, raw := range req.Advances {
		if i >= payroll.AdvanceSlots {
			break
		}
		if err := set(&line.Advances[i], raw); err != nil {
			return err
		}
	}
	return nil
}

// PayrollRegisterPDF streams the month's register as a PDF.
// GET /api/payroll/register.pdf?month=2025-06
func (h *Handler) PayrollRegisterPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key, _, _, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}

	sheet, err := h.Store.GetPayrollSheet(ctx, key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load payroll sheet", err)
		return
	}
	employees, err := h.Store.ListEmployees(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=nominas-%s.pdf", key))
	if err := payroll.WriteRegisterPDF(w, key, sheet, employees); err != nil {
		log.Error().Err(err).Str("month", key).Msg("failed to render payroll register")
	}
}
