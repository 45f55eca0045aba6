/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response shapes that differ from the domain types

VALIDATION:
  Request types carry validator/v10 struct tags and are checked with
  decodeAndValidate before any handler logic runs. Domain types are
  returned directly where their JSON tags already match the contract.

SEE ALSO:
  - handlers.go: Uses these types
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// =============================================================================
// REQUEST TYPES
// =============================================================================

// EmployeeRequest creates or updates an employee.
type EmployeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone"`
	Position      string  `json:"position"`
	Department    string  `json:"department" validate:"required"`
	HoursPerMonth float64 `json:"hoursPerMonth" validate:"omitempty,gt=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=active vacation inactive"`
}

// SetHoursRequest records one calendar cell.
type SetHoursRequest struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours float64 `json:"hours" validate:"gte=0,lte=24"`
}

// AbsenceRequest submits an absence for approval.
type AbsenceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Kind       string `json:"kind" validate:"required,oneof=vacation sick personal other work_leave"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason"`
}

// ProjectRequest creates or updates a project.
type ProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=presupuesto administracion"`
	Budget      string `json:"budget" validate:"omitempty,number"`
	HourlyRate  string `json:"hourlyRate" validate:"omitempty,number"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=activo completado pausado"`
}

// WorkerRequest attaches a worker to a project.
type WorkerRequest struct {
	Name       string `json:"name" validate:"required"`
	HourlyRate string `json:"hourlyRate" validate:"omitempty,number"`
}

// WorkDayRequest logs a day of project work for a worker.
type WorkDayRequest struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours float64 `json:"hours" validate:"gt=0,lte=24"`
}

// ProjectExpenseRequest adds spending to a project.
type ProjectExpenseRequest struct {
	Amount string `json:"amount" validate:"required,number"`
}

// FixedExpenseRequest creates a fixed expense line.
type FixedExpenseRequest struct {
	Concept string `json:"concept" validate:"required"`
	Amount  string `json:"amount" validate:"required,number"`
}

// VariableExpenseRequest creates a variable expense.
type VariableExpenseRequest struct {
	Concept          string `json:"concept" validate:"required"`
	Amount           string `json:"amount" validate:"required,number"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Note             string `json:"note"`
	PaymentMethod    string `json:"paymentMethod" validate:"required,oneof=transferencia efectivo tarjeta"`
	CreditCardNumber string `json:"creditCardNumber"`
}

// PayrollLineRequest edits the manual fields of one payroll line. Total is
// not accepted; it is always recomputed server-side.
type PayrollLineRequest struct {
	GrossSalary            string   `json:"grossSalary" validate:"omitempty,number"`
	EmployeeSocialSecurity string   `json:"employeeSocialSecurity" validate:"omitempty,number"`
	EmployerSocialSecurity string   `json:"employerSocialSecurity" validate:"omitempty,number"`
	IncomeTaxWithholding   string   `json:"incomeTaxWithholding" validate:"omitempty,number"`
	Garnishments           string   `json:"garnishments" validate:"omitempty,number"`
	PerDiems               []string `json:"perDiems" validate:"omitempty,max=5,dive,number"`
	Advances               []string `json:"advances" validate:"omitempty,max=3,dive,number"`
	OvertimeHoursPay       string   `json:"overtimeHoursPay" validate:"omitempty,number"`
	HolidayHoursPay        string   `json:"holidayHoursPay" validate:"omitempty,number"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HolidaysResponse splits the year's holidays by jurisdiction.
type HolidaysResponse struct {
	Year     int        `json:"year"`
	National []DatedDTO `json:"national"`
	Regional []DatedDTO `json:"regional"`
	All      []DatedDTO `json:"all"`
}

// DatedDTO is a named calendar date.
type DatedDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// decodeAndValidate decodes the JSON body into req and runs the validator.
// On failure it writes the 400 itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err)
		return false
	}
	return true
}

// yearMonthParams parses the ?year and ?month query parameters.
func yearMonthParams(r *http.Request) (int, int, error) {
	var year, month int
	if _, err := fmt.Sscanf(r.URL.Query().Get("year"), "%d", &year); err != nil {
		return 0, 0, fmt.Errorf("year parameter is required")
	}
	if _, err := fmt.Sscanf(r.URL.Query().Get("month"), "%d", &month); err != nil {
		return 0, 0, fmt.Errorf("month parameter is required")
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	return year, month, nil
}
