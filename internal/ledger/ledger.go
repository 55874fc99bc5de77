// Package ledger implements the application operations over a record store:
// validation, expense materialization flows, scoped deletes, paid toggles and
// the deletion guard for categories.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/model"
	"github.com/fincontrol/fincontrol/internal/service"
)

// Validation errors, reported before any write happens.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrCardRequired        = errors.New("card payments require a card")
	ErrInstallmentsTooFew  = errors.New("parcelado expenses require at least 2 installments")
	ErrCategoryTypeInvalid = errors.New("category type must be income or expense")
)

// DeleteScope selects what an expense deletion removes.
type DeleteScope string

const (
	// DeleteScopeAll removes the expense and every installment of its series.
	DeleteScopeAll DeleteScope = "all"
	// DeleteScopeOne removes a single installment, leaving the expense record
	// and the sibling installments untouched.
	DeleteScopeOne DeleteScope = "one"
)

// Ledger runs every store-dependent operation under one explicit session.
type Ledger struct {
	store   service.Store
	session service.Session
}

// New creates a ledger bound to a store and session.
func New(store service.Store, session service.Session) *Ledger {
	return &Ledger{store: store, session: session}
}

// State loads every collection into one application state snapshot.
func (l *Ledger) State(ctx context.Context) (model.AppState, error) {
	owner := l.session.OwnerID

	cards, err := l.store.ListCards(ctx, owner)
	if err != nil {
		return model.AppState{}, fmt.Errorf("failed to load cards: %w", err)
	}
	categories, err := l.store.ListCategories(ctx, owner)
	if err != nil {
		return model.AppState{}, fmt.Errorf("failed to load categories: %w", err)
	}
	incomes, err := l.store.ListIncomes(ctx, owner)
	if err != nil {
		return model.AppState{}, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := l.store.ListExpenses(ctx, owner)
	if err != nil {
		return model.AppState{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	installments, err := l.store.ListInstallments(ctx, owner)
	if err != nil {
		return model.AppState{}, fmt.Errorf("failed to load installments: %w", err)
	}

	return model.AppState{
		Cards:        cards,
		Categories:   categories,
		Incomes:      incomes,
		Expenses:     expenses,
		Installments: installments,
	}, nil
}

// AddCard creates a card.
func (l *Ledger) AddCard(ctx context.Context, name string) (model.Card, error) {
	if name == "" {
		return model.Card{}, ErrNameRequired
	}
	return l.store.InsertCard(ctx, model.Card{
		ID:      uuid.NewString(),
		Name:    name,
		OwnerID: l.session.OwnerID,
	})
}

// RemoveCard deletes a card.
func (l *Ledger) RemoveCard(ctx context.Context, id string) error {
	return l.store.DeleteCard(ctx, l.session.OwnerID, id)
}

// AddCategory creates a category of the given type.
func (l *Ledger) AddCategory(ctx context.Context, name string, categoryType model.CategoryType) (model.Category, error) {
	if name == "" {
		return model.Category{}, ErrNameRequired
	}
	if !categoryType.IsValid() {
		return model.Category{}, fmt.Errorf("%w: %q", ErrCategoryTypeInvalid, categoryType)
	}
	return l.store.InsertCategory(ctx, model.Category{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    categoryType,
		OwnerID: l.session.OwnerID,
	})
}

// RemoveCategory deletes a category. When the category is still referenced
// by any income, expense or installment, the confirm callback decides
// whether deletion proceeds; deletion is never blocked outright. No
// cascading cleanup happens either way.
func (l *Ledger) RemoveCategory(ctx context.Context, id string, confirm func() bool) (bool, error) {
	state, err := l.State(ctx)
	if err != nil {
		return false, err
	}

	if budget.CategoryInUse(state, id) && !confirm() {
		slog.Info("category deletion declined", "id", id)
		return false, nil
	}

	if err := l.store.DeleteCategory(ctx, l.session.OwnerID, id); err != nil {
		return false, err
	}
	return true, nil
}

// AddIncome creates an income, defaulting the start date to today and the
// window to one month.
func (l *Ledger) AddIncome(ctx context.Context, income model.Income) (model.Income, error) {
	if err := validateIncome(income); err != nil {
		return model.Income{}, err
	}

	income.ID = uuid.NewString()
	income.OwnerID = l.session.OwnerID
	if income.Months < 1 {
		income.Months = 1
	}
	if income.StartDate == "" {
		income.StartDate = time.Now().Format("2006-01-02")
	}
	return l.store.InsertIncome(ctx, income)
}

// UpdateIncome rewrites an income.
func (l *Ledger) UpdateIncome(ctx context.Context, income model.Income) error {
	if err := validateIncome(income); err != nil {
		return err
	}
	income.OwnerID = l.session.OwnerID
	return l.store.UpdateIncome(ctx, income)
}

// RemoveIncome deletes an income.
func (l *Ledger) RemoveIncome(ctx context.Context, id string) error {
	return l.store.DeleteIncome(ctx, l.session.OwnerID, id)
}

// AddExpense validates and stores an expense, then materializes and stores
// its installment series. The two inserts are sequential dependent writes
// with no atomicity across them: a failure after the expense insert leaves
// an expense without installments.
func (l *Ledger) AddExpense(ctx context.Context, expense model.Expense) (model.Expense, []model.Installment, error) {
	if err := validateExpense(expense); err != nil {
		return model.Expense{}, nil, err
	}

	expense.ID = uuid.NewString()
	expense.OwnerID = l.session.OwnerID
	if expense.Type != model.ExpenseTypeParcelado {
		expense.Type = model.ExpenseTypeSingle
		expense.Months = 1
	}
	if expense.PurchaseDate == "" {
		expense.PurchaseDate = time.Now().Format("2006-01-02")
	}
	if expense.StartBillingMonth == "" {
		expense.StartBillingMonth = budget.CurrentMonthKey()
	}
	if expense.PaymentType != model.PaymentTypeCard {
		expense.PaymentType = model.PaymentTypeCash
		expense.CardID = ""
	}

	stored, err := l.store.InsertExpense(ctx, expense)
	if err != nil {
		return model.Expense{}, nil, err
	}

	installments, err := budget.Materialize(stored)
	if err != nil {
		return stored, nil, err
	}

	if err := l.store.InsertInstallments(ctx, installments); err != nil {
		// The expense is already persisted; not rolled back.
		return stored, nil, fmt.Errorf("expense stored but installments failed: %w", err)
	}

	slog.Info("expense added", "id", stored.ID, "name", stored.Name, "installments", len(installments))
	return stored, installments, nil
}

// UpdateExpense rewrites an expense's value, category, payment and name, and
// propagates the changes to its existing installments. Materialization does
// not re-run: installment count and spacing are immutable after creation, so
// the stored record's type and months stay authoritative no matter what the
// caller passes, and the propagated per-installment amount is computed from
// them.
func (l *Ledger) UpdateExpense(ctx context.Context, expense model.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}
	expense.OwnerID = l.session.OwnerID

	stored, err := l.findExpense(ctx, expense.ID)
	if err != nil {
		return err
	}
	expense.Type = stored.Type
	expense.Months = stored.Months
	expense.StartBillingMonth = stored.StartBillingMonth
	expense.PurchaseDate = stored.PurchaseDate

	if err := l.store.UpdateExpense(ctx, expense); err != nil {
		return err
	}

	per := budget.PerInstallmentAmount(expense)
	return l.store.RewriteInstallmentsForExpense(ctx, l.session.OwnerID, expense.ID,
		per, expense.Name, expense.CategoryID)
}

func (l *Ledger) findExpense(ctx context.Context, id string) (model.Expense, error) {
	expenses, err := l.store.ListExpenses(ctx, l.session.OwnerID)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, e := range expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Expense{}, fmt.Errorf("expense %s not found", id)
}

// RemoveExpense deletes with the given scope: "all" removes the expense and
// every installment referencing it; "one" removes exactly the named
// installment and leaves the expense record and siblings untouched.
func (l *Ledger) RemoveExpense(ctx context.Context, expenseID string, scope DeleteScope, installmentID string) error {
	owner := l.session.OwnerID

	switch scope {
	case DeleteScopeAll:
		if err := l.store.DeleteExpense(ctx, owner, expenseID); err != nil {
			return err
		}
		return l.store.DeleteInstallmentsByExpense(ctx, owner, expenseID)
	case DeleteScopeOne:
		if installmentID == "" {
			return fmt.Errorf("scope %q requires an installment id", scope)
		}
		return l.store.DeleteInstallment(ctx, owner, installmentID)
	default:
		return fmt.Errorf("unknown delete scope %q", scope)
	}
}

// SetInstallmentPaid toggles the paid flag on one installment.
func (l *Ledger) SetInstallmentPaid(ctx context.Context, id string, paid bool) error {
	return l.store.UpdateInstallmentPaid(ctx, l.session.OwnerID, id, paid)
}

// SetCardMonthPaid toggles the paid flag on a card's whole statement for one month.
func (l *Ledger) SetCardMonthPaid(ctx context.Context, cardID, dueMonth string, paid bool) error {
	return l.store.UpdateInstallmentsPaidByCard(ctx, l.session.OwnerID, cardID, dueMonth, paid)
}

// BuildExport assembles the backup envelope: the full state snapshot,
// verbatim, with the export version and date.
func (l *Ledger) BuildExport(ctx context.Context) (model.Export, error) {
	state, err := l.State(ctx)
	if err != nil {
		return model.Export{}, err
	}
	return model.Export{
		Version:    model.ExportVersion,
		ExportedAt: time.Now().Format("2006-01-02"),
		Data:       state,
	}, nil
}

func validateIncome(income model.Income) error {
	if income.Name == "" {
		return ErrNameRequired
	}
	if income.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func validateExpense(expense model.Expense) error {
	if expense.Name == "" {
		return ErrNameRequired
	}
	if expense.IsPerInstallmentValue {
		if expense.PerInstallment <= 0 {
			return ErrInvalidAmount
		}
	} else if expense.TotalAmount <= 0 {
		return ErrInvalidAmount
	}
	if expense.PaymentType == model.PaymentTypeCard && expense.CardID == "" {
		return ErrCardRequired
	}
	if expense.Type == model.ExpenseTypeParcelado && expense.Months < 2 {
		return ErrInstallmentsTooFew
	}
	return nil
}
