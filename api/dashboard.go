package api

import (
	"net/http"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/roster"
)

// Dashboard returns the landing-page counters.
// GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.Store.ListEmployees(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}
	absences, err := h.Store.ListAbsences(ctx, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list absences", err)
		return
	}
	allProjects, err := h.Store.ListProjects(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects", err)
		return
	}
	fixed, err := h.Store.ListFixedExpenses(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list fixed expenses", err)
		return
	}
	variable, err := h.Store.ListVariableExpenses(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list variable expenses", err)
		return
	}

	activeEmployees, operarios := 0, 0
	for _, e := range employees {
		if e.Status == roster.StatusActive {
			activeEmployees++
		}
		if e.IsActiveOperario() {
			operarios++
		}
	}
	pendingAbsences := 0
	for _, a := range absences {
		if a.Status == roster.RequestPending {
			pendingAbsences++
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"employees": map[string]any{
			"total":           len(employees),
			"active":          activeEmployees,
			"activeOperarios": operarios,
		},
		"absences": map[string]any{
			"total":   len(absences),
			"pending": pendingAbsences,
		},
		"projects": projects.Summarize(allProjects),
		"expenses": map[string]any{
			"fixedTotal":    expenses.TotalFixed(fixed),
			"variableTotal": expenses.TotalVariable(variable),
		},
	})
}
