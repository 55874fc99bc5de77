// Package snapshot provides the fallback record store: the whole application
// state held in memory and written to a single JSON file on every mutation.
// It is used when no remote store or owner is configured.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/fincontrol/internal/model"
)

// Store implements service.Store over an in-memory AppState persisted as a
// JSON snapshot. The owner argument on every method is ignored: the snapshot
// file is inherently single-user.
type Store struct {
	mu    sync.Mutex
	path  string
	state model.AppState
}

// DefaultState returns the seeded state a fresh installation starts with.
func DefaultState() model.AppState {
	now := time.Now().UTC()
	return model.AppState{
		Categories: []model.Category{
			{ID: uuid.NewString(), Name: "Salário", Type: model.CategoryTypeIncome, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Freelancer", Type: model.CategoryTypeIncome, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Mercado", Type: model.CategoryTypeExpense, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Transporte", Type: model.CategoryTypeExpense, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Contas", Type: model.CategoryTypeExpense, CreatedAt: now},
		},
	}
}

// NewStore loads the snapshot at path, falling back to the seeded default
// state when the file is missing or unparseable. An empty path keeps the
// store purely in memory.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	if path == "" {
		s.state = DefaultState()
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read snapshot: %w", err)
		}
		s.state = DefaultState()
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.state); err != nil {
		// Malformed persisted state never blocks startup.
		slog.Warn("snapshot is unparseable, starting from default state", "path", path, "error", err)
		s.state = DefaultState()
	}
	return s, nil
}

// Close persists the final state.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// State returns a copy of the current application state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// mutate runs fn under the lock and saves the whole snapshot afterwards.
func (s *Store) mutate(fn func(*model.AppState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	return s.persistLocked()
}

func copyState(in model.AppState) model.AppState {
	return model.AppState{
		Cards:        append([]model.Card(nil), in.Cards...),
		Categories:   append([]model.Category(nil), in.Categories...),
		Incomes:      append([]model.Income(nil), in.Incomes...),
		Expenses:     append([]model.Expense(nil), in.Expenses...),
		Installments: append([]model.Installment(nil), in.Installments...),
	}
}

// ListCards returns all cards.
func (s *Store) ListCards(_ context.Context, _ string) ([]model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Card(nil), s.state.Cards...), nil
}

// InsertCard appends a card.
func (s *Store) InsertCard(_ context.Context, card model.Card) (model.Card, error) {
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
	err := s.mutate(func(st *model.AppState) {
		st.Cards = append(st.Cards, card)
	})
	return card, err
}

// DeleteCard removes a card by id.
func (s *Store) DeleteCard(_ context.Context, _ string, id string) error {
	return s.mutate(func(st *model.AppState) {
		st.Cards = deleteByID(st.Cards, id, func(c model.Card) string { return c.ID })
	})
}

// ListCategories returns all categories.
func (s *Store) ListCategories(_ context.Context, _ string) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Category(nil), s.state.Categories...), nil
}

// InsertCategory appends a category.
func (s *Store) InsertCategory(_ context.Context, category model.Category) (model.Category, error) {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	err := s.mutate(func(st *model.AppState) {
		st.Categories = append(st.Categories, category)
	})
	return category, err
}

// DeleteCategory removes a category by id, leaving references dangling.
func (s *Store) DeleteCategory(_ context.Context, _ string, id string) error {
	return s.mutate(func(st *model.AppState) {
		st.Categories = deleteByID(st.Categories, id, func(c model.Category) string { return c.ID })
	})
}

// ListIncomes returns all incomes.
func (s *Store) ListIncomes(_ context.Context, _ string) ([]model.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Income(nil), s.state.Incomes...), nil
}

// InsertIncome appends an income.
func (s *Store) InsertIncome(_ context.Context, income model.Income) (model.Income, error) {
	if income.Months < 1 {
		income.Months = 1
	}
	if income.CreatedAt.IsZero() {
		income.CreatedAt = time.Now().UTC()
	}
	err := s.mutate(func(st *model.AppState) {
		st.Incomes = append(st.Incomes, income)
	})
	return income, err
}

// UpdateIncome replaces an income record in place.
func (s *Store) UpdateIncome(_ context.Context, income model.Income) error {
	found := false
	err := s.mutate(func(st *model.AppState) {
		for i := range st.Incomes {
			if st.Incomes[i].ID == income.ID {
				income.CreatedAt = st.Incomes[i].CreatedAt
				st.Incomes[i] = income
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("income %s not found", income.ID)
	}
	return nil
}

// DeleteIncome removes an income by id.
func (s *Store) DeleteIncome(_ context.Context, _ string, id string) error {
	return s.mutate(func(st *model.AppState) {
		st.Incomes = deleteByID(st.Incomes, id, func(i model.Income) string { return i.ID })
	})
}

// ListExpenses returns all expenses.
func (s *Store) ListExpenses(_ context.Context, _ string) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Expense(nil), s.state.Expenses...), nil
}

// InsertExpense appends an expense.
func (s *Store) InsertExpense(_ context.Context, expense model.Expense) (model.Expense, error) {
	if expense.Months < 1 {
		expense.Months = 1
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}
	err := s.mutate(func(st *model.AppState) {
		st.Expenses = append(st.Expenses, expense)
	})
	return expense, err
}

// UpdateExpense replaces an expense's mutable fields in place.
func (s *Store) UpdateExpense(_ context.Context, expense model.Expense) error {
	found := false
	err := s.mutate(func(st *model.AppState) {
		for i := range st.Expenses {
			if st.Expenses[i].ID == expense.ID {
				cur := st.Expenses[i]
				cur.Name = expense.Name
				cur.TotalAmount = expense.TotalAmount
				cur.PerInstallment = expense.PerInstallment
				cur.IsPerInstallmentValue = expense.IsPerInstallmentValue
				cur.CategoryID = expense.CategoryID
				cur.PaymentType = expense.PaymentType
				cur.CardID = expense.CardID
				st.Expenses[i] = cur
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("expense %s not found", expense.ID)
	}
	return nil
}

// DeleteExpense removes the expense record only.
func (s *Store) DeleteExpense(_ context.Context, _ string, id string) error {
	return s.mutate(func(st *model.AppState) {
		st.Expenses = deleteByID(st.Expenses, id, func(e model.Expense) string { return e.ID })
	})
}

// ListInstallments returns all installments.
func (s *Store) ListInstallments(_ context.Context, _ string) ([]model.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Installment(nil), s.state.Installments...), nil
}

// InsertInstallments appends a materialized series.
func (s *Store) InsertInstallments(_ context.Context, installments []model.Installment) error {
	return s.mutate(func(st *model.AppState) {
		st.Installments = append(st.Installments, installments...)
	})
}

// UpdateInstallmentPaid toggles a single paid flag.
func (s *Store) UpdateInstallmentPaid(_ context.Context, _ string, id string, paid bool) error {
	found := false
	err := s.mutate(func(st *model.AppState) {
		for i := range st.Installments {
			if st.Installments[i].ID == id {
				st.Installments[i].Paid = paid
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("installment %s not found", id)
	}
	return nil
}

// UpdateInstallmentsPaidByCard toggles the paid flag for one card's month.
func (s *Store) UpdateInstallmentsPaidByCard(_ context.Context, _ string, cardID, dueMonth string, paid bool) error {
	return s.mutate(func(st *model.AppState) {
		for i := range st.Installments {
			if st.Installments[i].CardID == cardID && st.Installments[i].DueMonth == dueMonth {
				st.Installments[i].Paid = paid
			}
		}
	})
}

// RewriteInstallmentsForExpense propagates an expense edit to its series.
func (s *Store) RewriteInstallmentsForExpense(_ context.Context, _ string, expenseID string, amount float64, name, categoryID string) error {
	return s.mutate(func(st *model.AppState) {
		for i := range st.Installments {
			if st.Installments[i].ExpenseID == expenseID {
				st.Installments[i].Amount = amount
				st.Installments[i].Name = name
				st.Installments[i].CategoryID = categoryID
			}
		}
	})
}

// DeleteInstallment removes a single installment.
func (s *Store) DeleteInstallment(_ context.Context, _ string, id string) error {
	return s.mutate(func(st *model.AppState) {
		st.Installments = deleteByID(st.Installments, id, func(i model.Installment) string { return i.ID })
	})
}

// DeleteInstallmentsByExpense removes an expense's whole series.
func (s *Store) DeleteInstallmentsByExpense(_ context.Context, _ string, expenseID string) error {
	return s.mutate(func(st *model.AppState) {
		kept := st.Installments[:0]
		for _, inst := range st.Installments {
			if inst.ExpenseID != expenseID {
				kept = append(kept, inst)
			}
		}
		st.Installments = kept
	})
}

func deleteByID[T any](in []T, id string, key func(T) string) []T {
	out := in[:0]
	for _, v := range in {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}
