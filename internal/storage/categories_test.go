package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("insert both types", func(t *testing.T) {
		_, err := store.InsertCategory(ctx, model.Category{ID: "cat1", Name: "Salário", Type: model.CategoryTypeIncome})
		require.NoError(t, err)
		_, err = store.InsertCategory(ctx, model.Category{ID: "cat2", Name: "Mercado", Type: model.CategoryTypeExpense})
		require.NoError(t, err)

		categories, err := store.ListCategories(ctx, "")
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, model.CategoryTypeIncome, categories[0].Type)
		assert.Equal(t, model.CategoryTypeExpense, categories[1].Type)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := store.InsertCategory(ctx, model.Category{ID: "cat3", Name: "Weird", Type: "savings"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("delete leaves references dangling", func(t *testing.T) {
		_, err := store.InsertIncome(ctx, model.Income{
			ID: "inc1", Name: "Salary", Amount: 1000, Months: 1,
			StartDate: "2024-01-01", CategoryID: "cat1",
		})
		require.NoError(t, err)

		require.NoError(t, store.DeleteCategory(ctx, "", "cat1"))

		incomes, err := store.ListIncomes(ctx, "")
		require.NoError(t, err)
		require.Len(t, incomes, 1)
		assert.Equal(t, "cat1", incomes[0].CategoryID, "dangling reference is kept")
	})
}
