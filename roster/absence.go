/*
absence.go - Absence requests and the imputation policy

PURPOSE:
  Models vacation, sick leave and other absence requests with a
  pending/approved/rejected workflow. Approved absences are what the
  calendar paints over work days and what the stats calculator treats
  as non-profit days.

IMPUTATION:
  When an approved absence covers a working day with no recorded hours,
  the calendar imputes a default workload so the month does not read as
  a shortfall:
    vacation, sick, work_leave  ->  8h
    personal, other             ->  0h
  The policy lives here, not in the stats calculator. The calculator only
  receives a date predicate.

SEE ALSO:
  - schedule/stats.go: AbsenceLookup consumed by ComputeMonthlyStats
*/
package roster

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// ABSENCE TYPES
// =============================================================================

// Kind classifies an absence request.
type Kind string

const (
	KindVacation  Kind = "vacation"
	KindSick      Kind = "sick"
	KindPersonal  Kind = "personal"
	KindOther     Kind = "other"
	KindWorkLeave Kind = "work_leave"
)

// ValidKind reports whether k is a known absence kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindVacation, KindSick, KindPersonal, KindOther, KindWorkLeave:
		return true
	}
	return false
}

// RequestStatus is the approval state of an absence.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Absence is one absence request over an inclusive date range.
type Absence struct {
	ID         string                `json:"id"`
	EmployeeID string                `json:"employeeId"`
	Kind       Kind                  `json:"kind"`
	Start      schedule.CalendarDate `json:"startDate"`
	End        schedule.CalendarDate `json:"endDate"`
	Days       int                   `json:"days"`
	Status     RequestStatus         `json:"status"`
	Reason     string                `json:"reason"`
}

// NewAbsence creates a pending absence request. The day count is derived
// from the inclusive range.
func NewAbsence(employeeID string, kind Kind, start, end schedule.CalendarDate, reason string) (Absence, error) {
	if !ValidKind(kind) {
		return Absence{}, fmt.Errorf("unknown absence kind %q", kind)
	}
	if end.Before(start) {
		return Absence{}, fmt.Errorf("absence ends %s before it starts %s", end, start)
	}
	return Absence{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Kind:       kind,
		Start:      start,
		End:        end,
		Days:       CountDays(start, end),
		Status:     RequestPending,
		Reason:     reason,
	}, nil
}

// CountDays returns the inclusive calendar-day span of an absence.
// A single-day absence counts as 1.
func CountDays(start, end schedule.CalendarDate) int {
	return schedule.DaysBetween(start, end)
}

// Covers reports whether the absence range includes the date.
func (a Absence) Covers(d schedule.CalendarDate) bool {
	return a.Start.BeforeOrEqual(d) && a.End.AfterOrEqual(d)
}

// =============================================================================
// IMPUTATION POLICY
// =============================================================================

// ImputedHours returns the default daily workload the calendar records for
// an approved absence of the given kind.
func ImputedHours(kind Kind) float64 {
	switch kind {
	case KindVacation, KindSick, KindWorkLeave:
		return 8
	default:
		return 0
	}
}

// =============================================================================
// ABSENCE INDEX
// =============================================================================

// AbsenceIndex maps dates to the absence kind covering them for one
// employee. Only approved absences are indexed.
type AbsenceIndex map[string]Kind

// BuildAbsenceIndex collects the approved absences of one employee into a
// date-keyed index.
func BuildAbsenceIndex(employeeID string, absences []Absence) AbsenceIndex {
	idx := make(AbsenceIndex)
	for _, a := range absences {
		if a.EmployeeID != employeeID || a.Status != RequestApproved {
			continue
		}
		for d := a.Start; d.BeforeOrEqual(a.End); d = d.AddDays(1) {
			idx[d.Key()] = a.Kind
		}
	}
	return idx
}

// Lookup satisfies the stats calculator's AbsenceLookup.
func (idx AbsenceIndex) Lookup(d schedule.CalendarDate) bool {
	_, ok := idx[d.Key()]
	return ok
}

// KindOn returns the absence kind covering the date, if any.
func (idx AbsenceIndex) KindOn(d schedule.CalendarDate) (Kind, bool) {
	k, ok := idx[d.Key()]
	return k, ok
}

// ImputedOn returns the default hours the calendar shows for the date, and
// whether an approved absence covers it.
func (idx AbsenceIndex) ImputedOn(d schedule.CalendarDate) (float64, bool) {
	k, ok := idx[d.Key()]
	if !ok {
		return 0, false
	}
	return ImputedHours(k), true
}
