package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// FIXED EXPENSE ENDPOINTS
// =============================================================================

// ListFixedExpenses returns the fixed overhead lines and their total.
// GET /api/expenses/fixed
func (h *Handler) ListFixedExpenses(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListFixedExpenses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list fixed expenses", err)
		return
	}
	if list == nil {
		list = []expenses.FixedExpense{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": list,
		"total":    expenses.TotalFixed(list),
	})
}

// CreateFixedExpense adds a fixed overhead line.
// POST /api/expenses/fixed
func (h *Handler) CreateFixedExpense(w http.ResponseWriter, r *http.Request) {
	var req FixedExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err)
		return
	}

	expense, err := expenses.NewFixedExpense(req.Concept, amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense", err)
		return
	}
	if err := h.Store.SaveFixedExpense(r.Context(), expense); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// DeleteFixedExpense removes a fixed overhead line.
// DELETE /api/expenses/fixed/{id}
func (h *Handler) DeleteFixedExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteFixedExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// VARIABLE EXPENSE ENDPOINTS
// =============================================================================

// ListVariableExpenses returns all variable expenses and their total.
// GET /api/expenses/variable
func (h *Handler) ListVariableExpenses(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListVariableExpenses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list variable expenses", err)
		return
	}
	if list == nil {
		list = []expenses.VariableExpense{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": list,
		"total":    expenses.TotalVariable(list),
	})
}

// CreateVariableExpense logs a one-off purchase.
// POST /api/expenses/variable
func (h *Handler) CreateVariableExpense(w http.ResponseWriter, r *http.Request) {
	var req VariableExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err)
		return
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}

	expense, err := expenses.NewVariableExpense(req.Concept, amount, date,
		expenses.PaymentMethod(req.PaymentMethod), req.CreditCardNumber)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense", err)
		return
	}
	expense.Note = req.Note

	if err := h.Store.SaveVariableExpense(r.Context(), expense); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// DeleteVariableExpense removes a variable expense.
// DELETE /api/expenses/variable/{id}
func (h *Handler) DeleteVariableExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteVariableExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
