package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincontrol/fincontrol/internal/model"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestMergeExpenseUpdatePreservesOmittedFlags(t *testing.T) {
	stored := model.Expense{
		ID:                "exp-1",
		Name:              "Geladeira",
		TotalAmount:       900,
		CategoryID:        "cat-home",
		PaymentType:       model.PaymentTypeCard,
		CardID:            "card-1",
		StartBillingMonth: "2024-02",
		Type:              model.ExpenseTypeParcelado,
		Months:            3,
	}

	t.Run("name-only update keeps everything else", func(t *testing.T) {
		flags := model.Expense{Name: "Geladeira Frost Free", PaymentType: model.PaymentTypeCash}

		updated := mergeExpenseUpdate(stored, flags, changedSet())

		assert.Equal(t, "Geladeira Frost Free", updated.Name)
		assert.InDelta(t, 900.0, updated.TotalAmount, 0.001)
		assert.Equal(t, model.PaymentTypeCard, updated.PaymentType)
		assert.Equal(t, "card-1", updated.CardID)
		assert.Equal(t, "cat-home", updated.CategoryID)
		assert.Equal(t, model.ExpenseTypeParcelado, updated.Type)
		assert.Equal(t, 3, updated.Months)
	})

	t.Run("changed flags override", func(t *testing.T) {
		flags := model.Expense{
			Name:        "Geladeira",
			TotalAmount: 1200,
			CategoryID:  "cat-electro",
		}

		updated := mergeExpenseUpdate(stored, flags, changedSet("total", "category"))

		assert.InDelta(t, 1200.0, updated.TotalAmount, 0.001)
		assert.Equal(t, "cat-electro", updated.CategoryID)
		assert.Equal(t, model.PaymentTypeCard, updated.PaymentType, "payment flag was not given")
	})

	t.Run("per flag switches to per-installment value", func(t *testing.T) {
		flags := model.Expense{Name: "Geladeira", PerInstallment: 310}

		updated := mergeExpenseUpdate(stored, flags, changedSet("per"))

		assert.True(t, updated.IsPerInstallmentValue)
		assert.InDelta(t, 310.0, updated.PerInstallment, 0.001)
	})
}

func TestApplyExpenseFlags(t *testing.T) {
	tests := []struct {
		name     string
		expense  model.Expense
		months   int
		wantType model.ExpenseType
		wantN    int
		wantPer  bool
	}{
		{
			name:     "default is single payment",
			expense:  model.Expense{TotalAmount: 100},
			months:   0,
			wantType: model.ExpenseTypeSingle,
			wantN:    1,
		},
		{
			name:     "parcelado flag splits into months",
			expense:  model.Expense{TotalAmount: 300},
			months:   3,
			wantType: model.ExpenseTypeParcelado,
			wantN:    3,
		},
		{
			name:     "per flag marks per-installment value",
			expense:  model.Expense{PerInstallment: 89.90},
			months:   12,
			wantType: model.ExpenseTypeParcelado,
			wantN:    12,
			wantPer:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyExpenseFlags(&tt.expense, tt.months)

			assert.Equal(t, tt.wantType, tt.expense.Type)
			assert.Equal(t, tt.wantN, tt.expense.Months)
			assert.Equal(t, tt.wantPer, tt.expense.IsPerInstallmentValue)
		})
	}
}
