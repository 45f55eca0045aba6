// Package expenses tracks company spending. Fixed expenses are the monthly
// overhead split across operarios on the payroll sheet; variable expenses
// are one-off purchases logged against a date and payment method.
package expenses

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/schedule"
)

// =============================================================================
// FIXED EXPENSES
// =============================================================================

// FixedExpense is one recurring monthly cost line (rent, insurance, power).
type FixedExpense struct {
	ID      string          `json:"id"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
}

// NewFixedExpense validates and creates a fixed expense.
func NewFixedExpense(concept string, amount decimal.Decimal) (FixedExpense, error) {
	if err := validate(concept, amount); err != nil {
		return FixedExpense{}, err
	}
	return FixedExpense{ID: uuid.NewString(), Concept: concept, Amount: amount}, nil
}

// TotalFixed sums the fixed overhead. This is the numerator of the payroll
// coefficient.
func TotalFixed(list []FixedExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Amount)
	}
	return total
}

// =============================================================================
// VARIABLE EXPENSES
// =============================================================================

// PaymentMethod is how a variable expense was paid.
type PaymentMethod string

const (
	PayTransfer PaymentMethod = "transferencia"
	PayCash     PaymentMethod = "efectivo"
	PayCard     PaymentMethod = "tarjeta"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PayTransfer || m == PayCash || m == PayCard
}

// VariableExpense is one dated purchase. CreditCardNumber is only meaningful
// for card payments and is cleared for the other methods.
type VariableExpense struct {
	ID               string                `json:"id"`
	Concept          string                `json:"concept"`
	Amount           decimal.Decimal       `json:"amount"`
	Date             schedule.CalendarDate `json:"date"`
	Note             string                `json:"note"`
	PaymentMethod    PaymentMethod         `json:"paymentMethod"`
	CreditCardNumber string                `json:"creditCardNumber,omitempty"`
}

// NewVariableExpense validates and creates a variable expense.
func NewVariableExpense(concept string, amount decimal.Decimal, date schedule.CalendarDate, method PaymentMethod, cardNumber string) (VariableExpense, error) {
	if err := validate(concept, amount); err != nil {
		return VariableExpense{}, err
	}
	if !ValidPaymentMethod(method) {
		return VariableExpense{}, fmt.Errorf("unknown payment method %q", method)
	}
	if method != PayCard {
		cardNumber = ""
	}
	return VariableExpense{
		ID:               uuid.NewString(),
		Concept:          concept,
		Amount:           amount,
		Date:             date,
		PaymentMethod:    method,
		CreditCardNumber: cardNumber,
	}, nil
}

// TotalVariable sums variable spending.
func TotalVariable(list []VariableExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalVariableInMonth sums variable spending dated inside the month.
func TotalVariableInMonth(list []VariableExpense, year int, month int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range list {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func validate(concept string, amount decimal.Decimal) error {
	if concept == "" {
		return fmt.Errorf("expense concept is required")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", amount)
	}
	return nil
}
