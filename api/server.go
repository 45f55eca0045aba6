/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/employees/*  Directory, hour calendar, monthly stats
  /api/absences/*   Absence workflow
  /api/holidays     Holiday calendar
  /api/projects/*   Projects, workers, logged days
  /api/expenses/*   Fixed and variable expenses
  /api/payroll/*    Monthly sheet, line edits, PDF register
  /api/dashboard    Aggregate counters
  /api/seed         Demo data (dev only)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
			r.Get("/{id}/hours", h.GetHours)
			r.Put("/{id}/hours", h.SetHours)
			r.Get("/{id}/stats", h.GetStats)
		})

		// Absence routes
		r.Route("/absences", func(r chi.Router) {
			r.Get("/", h.ListAbsences)
			r.Post("/", h.CreateAbsence)
			r.Post("/{id}/approve", h.ApproveAbsence)
			r.Post("/{id}/reject", h.RejectAbsence)
			r.Delete("/{id}", h.DeleteAbsence)
		})

		// Holiday routes
		r.Get("/holidays", h.ListHolidays)

		// Project routes
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)
			r.Get("/{id}", h.GetProject)
			r.Put("/{id}", h.UpdateProject)
			r.Delete("/{id}", h.DeleteProject)
			r.Post("/{id}/workers", h.AddWorker)
			r.Post("/{id}/workers/{workerID}/days", h.AddWorkDay)
			r.Post("/{id}/expenses", h.AddProjectExpense)
		})

		// Expense routes
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/fixed", h.ListFixedExpenses)
			r.Post("/fixed", h.CreateFixedExpense)
			r.Delete("/fixed/{id}", h.DeleteFixedExpense)
			r.Get("/variable", h.ListVariableExpenses)
			r.Post("/variable", h.CreateVariableExpense)
			r.Delete("/variable/{id}", h.DeleteVariableExpense)
		})

		// Payroll routes
		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.GetPayrollSheet)
			r.Get("/register.pdf", h.PayrollRegisterPDF)
			r.Put("/{employeeID}", h.UpdatePayrollLine)
		})

		// Dashboard and demo data
		r.Get("/dashboard", h.Dashboard)
		r.Post("/seed", h.SeedDemoData)
	})

	return r
}
