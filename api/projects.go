package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/projects"
	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// PROJECT ENDPOINTS
// =============================================================================

// ListProjects returns all projects plus the portfolio summary.
// GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	all, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects", err)
		return
	}
	if all == nil {
		all = []projects.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": all,
		"summary":  projects.Summarize(all),
	})
}

// CreateProject creates a new project.
// POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := projects.NewProject(req.Name, projects.Type(req.Type))
	p.Description = req.Description
	if req.Status != "" {
		p.Status = projects.Status(req.Status)
	}
	var err error
	if p.Budget, err = parseAmount(req.Budget); err != nil {
		writeError(w, http.StatusBadRequest, "invalid budget", err)
		return
	}
	if p.HourlyRate, err = parseAmount(req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid hourly rate", err)
		return
	}

	if err := h.Store.SaveProject(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save project", err)
		return
	}
	log.Info().Str("project", p.ID).Str("name", p.Name).Msg("project created")
	writeJSON(w, http.StatusCreated, p)
}

// GetProject returns one project.
// GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProject updates a project header.
// PUT /api/projects/{id}
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}

	var req ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p.Name = req.Name
	p.Type = projects.Type(req.Type)
	p.Description = req.Description
	if req.Status != "" {
		p.Status = projects.Status(req.Status)
	}
	if p.Budget, err = parseAmount(req.Budget); err != nil {
		writeError(w, http.StatusBadRequest, "invalid budget", err)
		return
	}
	if p.HourlyRate, err = parseAmount(req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid hourly rate", err)
		return
	}

	if err := h.Store.SaveProject(r.Context(), *p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save project", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject removes a project.
// DELETE /api/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddWorker attaches a worker to a project.
// POST /api/projects/{id}/workers
func (h *Handler) AddWorker(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}

	var req WorkerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	rate, err := parseAmount(req.HourlyRate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hourly rate", err)
		return
	}

	worker := projects.Worker{ID: uuid.NewString(), Name: req.Name, HourlyRate: rate}
	p.Workers = append(p.Workers, worker)

	if err := h.Store.SaveProject(r.Context(), *p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save project", err)
		return
	}
	writeJSON(w, http.StatusCreated, worker)
}

// AddWorkDay logs a day of work for a project worker.
// POST /api/projects/{id}/workers/{workerID}/days
func (h *Handler) AddWorkDay(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}

	var req WorkDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}

	workerID := chi.URLParam(r, "workerID")
	found := false
	for i := range p.Workers {
		if p.Workers[i].ID == workerID {
			p.Workers[i].WorkDays = append(p.Workers[i].WorkDays, projects.WorkDay{Date: date, Hours: req.Hours})
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "worker not found", nil)
		return
	}

	if err := h.Store.SaveProject(r.Context(), *p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save project", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// AddProjectExpense adds spending to a project.
// POST /api/projects/{id}/expenses
func (h *Handler) AddProjectExpense(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}

	var req ProjectExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err)
		return
	}

	p.Expenses = p.Expenses.Add(amount)
	if err := h.Store.SaveProject(r.Context(), *p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save project", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// parseAmount parses a decimal string, treating empty as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
