package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestMergeIncomeUpdatePreservesOmittedFlags(t *testing.T) {
	stored := model.Income{
		ID:         "inc-1",
		Name:       "Salário",
		Amount:     5000,
		Months:     6,
		StartDate:  "2024-03-01",
		CategoryID: "cat-salary",
	}

	t.Run("name-only update keeps window and amount", func(t *testing.T) {
		flags := model.Income{Name: "Salário Líquido", Months: 1}

		updated := mergeIncomeUpdate(stored, flags, changedSet())

		assert.Equal(t, "Salário Líquido", updated.Name)
		assert.InDelta(t, 5000.0, updated.Amount, 0.001)
		assert.Equal(t, 6, updated.Months, "omitted --months must not shrink the window")
		assert.Equal(t, "2024-03-01", updated.StartDate, "omitted --start must not clear the anchor")
		assert.Equal(t, "cat-salary", updated.CategoryID)
	})

	t.Run("changed flags override", func(t *testing.T) {
		flags := model.Income{Name: "Salário", Amount: 5500, StartDate: "2024-06-01"}

		updated := mergeIncomeUpdate(stored, flags, changedSet("amount", "start"))

		assert.InDelta(t, 5500.0, updated.Amount, 0.001)
		assert.Equal(t, "2024-06-01", updated.StartDate)
		assert.Equal(t, 6, updated.Months)
	})
}
