package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestIncomeCRUD(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("insert defaults months to 1", func(t *testing.T) {
		inc, err := store.InsertIncome(ctx, model.Income{
			ID: "inc1", Name: "Bonus", Amount: 500, StartDate: "2024-03-10",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inc.Months)
	})

	t.Run("update rewrites mutable fields", func(t *testing.T) {
		err := store.UpdateIncome(ctx, model.Income{
			ID: "inc1", Name: "Bonus (adjusted)", Amount: 750, Months: 2,
			StartDate: "2024-04-01", CategoryID: "cat-x",
		})
		require.NoError(t, err)

		incomes, err := store.ListIncomes(ctx, "")
		require.NoError(t, err)
		require.Len(t, incomes, 1)
		assert.Equal(t, "Bonus (adjusted)", incomes[0].Name)
		assert.Equal(t, 750.0, incomes[0].Amount)
		assert.Equal(t, 2, incomes[0].Months)
		assert.Equal(t, "2024-04-01", incomes[0].StartDate)
		assert.Equal(t, "cat-x", incomes[0].CategoryID)
	})

	t.Run("update of unknown income fails", func(t *testing.T) {
		err := store.UpdateIncome(ctx, model.Income{ID: "ghost", Name: "x", StartDate: "2024-01-01"})
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteIncome(ctx, "", "inc1"))
		incomes, err := store.ListIncomes(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, incomes)
	})
}

func TestIncomeOptionalCategory(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.InsertIncome(ctx, model.Income{
		ID: "inc1", Name: "Freelance", Amount: 1200, Months: 3, StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	incomes, err := store.ListIncomes(ctx, "")
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Empty(t, incomes[0].CategoryID)
}
