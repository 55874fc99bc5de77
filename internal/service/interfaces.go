// Package service defines the contracts between the ledger and its stores.
package service

import (
	"context"

	"github.com/fincontrol/fincontrol/internal/model"
)

// Session carries the store-dependent operation context: which owner the
// records belong to. An empty OwnerID means single-user local operation.
// It replaces any ambient client/session lookup; every store call receives
// the owner explicitly.
type Session struct {
	OwnerID string
}

// Store is the record-store collaborator. Every implementation exposes the
// same four verbs per entity; list order is insertion order (creation time),
// and installment series order is re-derivable by N. There is no atomicity
// across entities: expense insert followed by installment batch insert is
// two dependent writes, and a failure between them leaves an expense without
// installments.
type Store interface {
	// Card operations
	ListCards(ctx context.Context, owner string) ([]model.Card, error)
	InsertCard(ctx context.Context, card model.Card) (model.Card, error)
	DeleteCard(ctx context.Context, owner, id string) error

	// Category operations
	ListCategories(ctx context.Context, owner string) ([]model.Category, error)
	InsertCategory(ctx context.Context, category model.Category) (model.Category, error)
	DeleteCategory(ctx context.Context, owner, id string) error

	// Income operations
	ListIncomes(ctx context.Context, owner string) ([]model.Income, error)
	InsertIncome(ctx context.Context, income model.Income) (model.Income, error)
	UpdateIncome(ctx context.Context, income model.Income) error
	DeleteIncome(ctx context.Context, owner, id string) error

	// Expense operations
	ListExpenses(ctx context.Context, owner string) ([]model.Expense, error)
	InsertExpense(ctx context.Context, expense model.Expense) (model.Expense, error)
	UpdateExpense(ctx context.Context, expense model.Expense) error
	DeleteExpense(ctx context.Context, owner, id string) error

	// Installment operations
	ListInstallments(ctx context.Context, owner string) ([]model.Installment, error)
	InsertInstallments(ctx context.Context, installments []model.Installment) error
	UpdateInstallmentPaid(ctx context.Context, owner, id string, paid bool) error
	UpdateInstallmentsPaidByCard(ctx context.Context, owner, cardID, dueMonth string, paid bool) error
	RewriteInstallmentsForExpense(ctx context.Context, owner, expenseID string, amount float64, name, categoryID string) error
	DeleteInstallment(ctx context.Context, owner, id string) error
	DeleteInstallmentsByExpense(ctx context.Context, owner, expenseID string) error

	Close() error
}
