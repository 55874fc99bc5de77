package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/model"
)

func expenseFixture(id string) model.Expense {
	return model.Expense{
		ID:                id,
		Name:              "Television",
		TotalAmount:       300,
		CategoryID:        "cat-el",
		PurchaseDate:      "2024-04-20",
		PaymentType:       model.PaymentTypeCard,
		CardID:            "card-1",
		StartBillingMonth: "2024-05",
		Type:              model.ExpenseTypeParcelado,
		Months:            3,
	}
}

func TestExpenseCRUD(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("insert and list", func(t *testing.T) {
		exp, err := store.InsertExpense(ctx, expenseFixture("exp1"))
		require.NoError(t, err)
		assert.False(t, exp.CreatedAt.IsZero())

		expenses, err := store.ListExpenses(ctx, "")
		require.NoError(t, err)
		require.Len(t, expenses, 1)

		got := expenses[0]
		assert.Equal(t, "Television", got.Name)
		assert.Equal(t, 300.0, got.TotalAmount)
		assert.Equal(t, model.ExpenseTypeParcelado, got.Type)
		assert.Equal(t, 3, got.Months)
		assert.Equal(t, "card-1", got.CardID)
		assert.Equal(t, "2024-05", got.StartBillingMonth)
	})

	t.Run("missing start billing month rejected", func(t *testing.T) {
		bad := expenseFixture("exp2")
		bad.StartBillingMonth = ""
		_, err := store.InsertExpense(ctx, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidExpense)
	})

	t.Run("update mutable fields", func(t *testing.T) {
		edited := expenseFixture("exp1")
		edited.Name = "Television 55\""
		edited.TotalAmount = 360
		edited.CategoryID = "cat-home"
		require.NoError(t, store.UpdateExpense(ctx, edited))

		expenses, err := store.ListExpenses(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "Television 55\"", expenses[0].Name)
		assert.Equal(t, 360.0, expenses[0].TotalAmount)
		assert.Equal(t, "cat-home", expenses[0].CategoryID)
	})

	t.Run("delete removes the expense only", func(t *testing.T) {
		require.NoError(t, store.InsertInstallments(ctx, seriesFixture("exp1", 3)))
		require.NoError(t, store.DeleteExpense(ctx, "", "exp1"))

		expenses, err := store.ListExpenses(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, expenses)

		// Installment cleanup is a separate write with its own scope.
		installments, err := store.ListInstallments(ctx, "")
		require.NoError(t, err)
		assert.Len(t, installments, 3)
	})
}
