package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestInstallmentsInMonth(t *testing.T) {
	installments := []model.Installment{
		{ID: "a", DueMonth: "2024-05", Amount: 100, Paid: true},
		{ID: "b", DueMonth: "2024-05", Amount: 50.5},
		{ID: "c", DueMonth: "2024-06", Amount: 75},
	}

	got := InstallmentsInMonth(installments, "2024-05")
	assert.Len(t, got.List, 2)
	assert.Equal(t, 150.5, got.Total)
	assert.Equal(t, 100.0, got.TotalPaid)

	empty := InstallmentsInMonth(installments, "2024-07")
	assert.Empty(t, empty.List)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.TotalPaid)
}

func TestIncomesInMonth(t *testing.T) {
	incomes := []model.Income{
		{ID: "salary", Name: "Salary", Amount: 3000, Months: 3, StartDate: "2024-01-15"},
	}

	t.Run("active window is inclusive of both ends", func(t *testing.T) {
		for _, month := range []string{"2024-01", "2024-02", "2024-03"} {
			got := IncomesInMonth(incomes, month)
			assert.Len(t, got.List, 1, "month %s", month)
			assert.Equal(t, 3000.0, got.Total, "month %s", month)
		}
	})

	t.Run("outside the window", func(t *testing.T) {
		for _, month := range []string{"2023-12", "2024-04"} {
			got := IncomesInMonth(incomes, month)
			assert.Empty(t, got.List, "month %s", month)
			assert.Zero(t, got.Total, "month %s", month)
		}
	})

	t.Run("zero months treated as one", func(t *testing.T) {
		oneOff := []model.Income{{ID: "bonus", Amount: 500, Months: 0, StartDate: "2024-06-10"}}
		assert.Equal(t, 500.0, IncomesInMonth(oneOff, "2024-06").Total)
		assert.Zero(t, IncomesInMonth(oneOff, "2024-07").Total)
	})

	t.Run("multiple active incomes sum", func(t *testing.T) {
		many := append(incomes, model.Income{ID: "freela", Amount: 1200, Months: 12, StartDate: "2023-09-01"})
		got := IncomesInMonth(many, "2024-02")
		assert.Len(t, got.List, 2)
		assert.Equal(t, 4200.0, got.Total)
	})
}

func TestLeftover(t *testing.T) {
	incomes := []model.Income{
		{ID: "salary", Amount: 1000, Months: 1, StartDate: "2024-05-01"},
	}
	installments := []model.Installment{
		{ID: "a", DueMonth: "2024-05", Amount: 400},
		{ID: "b", DueMonth: "2024-05", Amount: 850},
	}

	// 1000 - 1250: negative leftover is reported as-is, no clamping.
	assert.Equal(t, -250.0, Leftover(incomes, installments, "2024-05"))
	assert.Equal(t, 0.0, Leftover(nil, nil, "2024-05"))
}
