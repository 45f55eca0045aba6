package expenses_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/backoffice/expenses"
	"github.com/warp/backoffice/schedule"
)

func TestTotalFixed(t *testing.T) {
	// The 1650 split over 3 operarios is the canonical payroll scenario.
	rent, err := expenses.NewFixedExpense("Alquiler nave", decimal.NewFromInt(1200))
	require.NoError(t, err)
	power, err := expenses.NewFixedExpense("Luz", decimal.NewFromInt(300))
	require.NoError(t, err)
	insurance, err := expenses.NewFixedExpense("Seguro", decimal.NewFromInt(150))
	require.NoError(t, err)

	total := expenses.TotalFixed([]expenses.FixedExpense{rent, power, insurance})
	assert.True(t, total.Equal(decimal.NewFromInt(1650)), "got %s", total)

	assert.True(t, expenses.TotalFixed(nil).IsZero())
}

func TestNewFixedExpense_Validation(t *testing.T) {
	_, err := expenses.NewFixedExpense("", decimal.NewFromInt(100))
	assert.Error(t, err, "concept is required")

	_, err = expenses.NewFixedExpense("Alquiler", decimal.Zero)
	assert.Error(t, err, "amount must be positive")

	_, err = expenses.NewFixedExpense("Alquiler", decimal.NewFromInt(-50))
	assert.Error(t, err)
}

func TestNewVariableExpense(t *testing.T) {
	day := schedule.NewDate(2025, time.June, 5)

	e, err := expenses.NewVariableExpense("Material soldadura", decimal.NewFromFloat(89.9), day, expenses.PayCard, "4242")
	require.NoError(t, err)
	assert.Equal(t, expenses.PayCard, e.PaymentMethod)
	assert.Equal(t, "4242", e.CreditCardNumber)
	assert.NotEmpty(t, e.ID)

	// Card number is dropped for non-card payments.
	e, err = expenses.NewVariableExpense("Gasoil", decimal.NewFromInt(60), day, expenses.PayCash, "4242")
	require.NoError(t, err)
	assert.Empty(t, e.CreditCardNumber)

	_, err = expenses.NewVariableExpense("Gasoil", decimal.NewFromInt(60), day, expenses.PaymentMethod("bizum"), "")
	assert.Error(t, err, "unknown payment method")
}

func TestTotalVariableInMonth(t *testing.T) {
	mk := func(concept string, amount int64, y int, m time.Month, d int) expenses.VariableExpense {
		e, err := expenses.NewVariableExpense(concept, decimal.NewFromInt(amount),
			schedule.NewDate(y, m, d), expenses.PayTransfer, "")
		if err != nil {
			t.Fatal(err)
		}
		return e
	}

	list := []expenses.VariableExpense{
		mk("Material", 100, 2025, time.June, 5),
		mk("Gasoil", 50, 2025, time.June, 20),
		mk("Herramienta", 200, 2025, time.July, 1),
	}

	june := expenses.TotalVariableInMonth(list, 2025, 6)
	assert.True(t, june.Equal(decimal.NewFromInt(150)), "got %s", june)

	all := expenses.TotalVariable(list)
	assert.True(t, all.Equal(decimal.NewFromInt(350)))
}
