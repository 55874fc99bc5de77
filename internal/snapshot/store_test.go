package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestNewStoreSeedsDefaults(t *testing.T) {
	store, err := NewStore("")
	require.NoError(t, err)

	ctx := context.Background()
	categories, err := store.ListCategories(ctx, "")
	require.NoError(t, err)
	require.Len(t, categories, 5)

	var names []string
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"Salário", "Freelancer", "Mercado", "Transporte", "Contas"}, names)
}

func TestNewStoreMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := NewStore(path)
	require.NoError(t, err, "malformed persisted state never blocks startup")

	categories, err := store.ListCategories(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, categories, 5)
}

func TestMutationsPersistImmediately(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.InsertCard(ctx, model.Card{ID: "c1", Name: "Nubank"})
	require.NoError(t, err)

	// The snapshot on disk already reflects the mutation, without Close.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk model.AppState
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Len(t, onDisk.Cards, 1)
	assert.Equal(t, "Nubank", onDisk.Cards[0].Name)
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	_, err = store.InsertIncome(ctx, model.Income{ID: "i1", Name: "Salary", Amount: 3000, Months: 6, StartDate: "2024-01-05"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	incomes, err := reloaded.ListIncomes(ctx, "")
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Name)
	assert.Equal(t, 6, incomes[0].Months)
}

func TestInstallmentMutations(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore("")
	require.NoError(t, err)

	series := []model.Installment{
		{ID: "a", ExpenseID: "e1", N: 1, Total: 2, Amount: 50, DueMonth: "2024-05", CardID: "card-1"},
		{ID: "b", ExpenseID: "e1", N: 2, Total: 2, Amount: 50, DueMonth: "2024-06", CardID: "card-1"},
		{ID: "c", ExpenseID: "e2", N: 1, Total: 1, Amount: 80, DueMonth: "2024-05", CardID: "card-1"},
	}
	require.NoError(t, store.InsertInstallments(ctx, series))

	t.Run("paid toggle", func(t *testing.T) {
		require.NoError(t, store.UpdateInstallmentPaid(ctx, "", "a", true))
		installments, err := store.ListInstallments(ctx, "")
		require.NoError(t, err)
		assert.True(t, installments[0].Paid)
	})

	t.Run("card month toggle", func(t *testing.T) {
		require.NoError(t, store.UpdateInstallmentsPaidByCard(ctx, "", "card-1", "2024-05", true))
		installments, err := store.ListInstallments(ctx, "")
		require.NoError(t, err)
		for _, inst := range installments {
			assert.Equal(t, inst.DueMonth == "2024-05", inst.Paid, "installment %s", inst.ID)
		}
	})

	t.Run("rewrite propagates edits", func(t *testing.T) {
		require.NoError(t, store.RewriteInstallmentsForExpense(ctx, "", "e1", 60, "Edited", "cat"))
		installments, err := store.ListInstallments(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 60.0, installments[0].Amount)
		assert.Equal(t, 80.0, installments[2].Amount, "other series untouched")
	})

	t.Run("scoped deletes", func(t *testing.T) {
		require.NoError(t, store.DeleteInstallment(ctx, "", "b"))
		require.NoError(t, store.DeleteInstallmentsByExpense(ctx, "", "e2"))
		installments, err := store.ListInstallments(ctx, "")
		require.NoError(t, err)
		require.Len(t, installments, 1)
		assert.Equal(t, "a", installments[0].ID)
	})
}

func TestUpdateExpenseKeepsScheduleFields(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore("")
	require.NoError(t, err)

	_, err = store.InsertExpense(ctx, model.Expense{
		ID: "e1", Name: "TV", TotalAmount: 300, StartBillingMonth: "2024-05",
		Type: model.ExpenseTypeParcelado, Months: 3,
	})
	require.NoError(t, err)

	require.NoError(t, store.UpdateExpense(ctx, model.Expense{
		ID: "e1", Name: "TV 55\"", TotalAmount: 360,
		StartBillingMonth: "2030-01", Type: model.ExpenseTypeSingle, Months: 12,
	}))

	expenses, err := store.ListExpenses(ctx, "")
	require.NoError(t, err)
	got := expenses[0]
	assert.Equal(t, "TV 55\"", got.Name)
	assert.Equal(t, 360.0, got.TotalAmount)
	// Schedule is immutable after creation.
	assert.Equal(t, "2024-05", got.StartBillingMonth)
	assert.Equal(t, model.ExpenseTypeParcelado, got.Type)
	assert.Equal(t, 3, got.Months)
}
