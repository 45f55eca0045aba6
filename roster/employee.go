// Package roster implements the employee directory and absence tracking.
// It owns the personnel data model and the absence imputation policy that
// feeds the monthly stats calculator.
package roster

import "github.com/google/uuid"

// =============================================================================
// EMPLOYEE
// =============================================================================

// Status is the lifecycle state of an employee.
type Status string

const (
	StatusActive   Status = "active"
	StatusVacation Status = "vacation"
	StatusInactive Status = "inactive"
)

// DepartmentOperario marks shop-floor workers. Only active operarios share
// the fixed-expenses overhead coefficient on the payroll sheet.
const DepartmentOperario = "Operario"

// Employee is one directory entry.
type Employee struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Position      string  `json:"position"`
	Department    string  `json:"department"`
	HoursPerMonth float64 `json:"hoursPerMonth"`
	Status        Status  `json:"status"`
}

// NewEmployee creates an active employee with a fresh ID and the standard
// 160-hour monthly contract.
func NewEmployee(name, email, position, department string) Employee {
	return Employee{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Position:      position,
		Department:    department,
		HoursPerMonth: 160,
		Status:        StatusActive,
	}
}

// IsActiveOperario reports whether the employee participates in the
// overhead coefficient split.
func (e Employee) IsActiveOperario() bool {
	return e.Status == StatusActive && e.Department == DepartmentOperario
}

// ValidStatus reports whether s is one of the known employee statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusVacation, StatusInactive:
		return true
	}
	return false
}
