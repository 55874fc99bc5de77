package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListExpenses returns the owner's expenses in creation order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, owner string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, name, total_amount, per_installment, is_per_installment_value,
			category_id, purchase_date, payment_type, card_id, start_billing_month,
			type, months, created_at
		FROM expenses
		WHERE owner_id = ?
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "count", len(expenses))
	return expenses, nil
}

func scanExpense(rows *sql.Rows) (model.Expense, error) {
	var exp model.Expense
	var categoryID, purchaseDate, cardID sql.NullString
	if err := rows.Scan(&exp.ID, &exp.OwnerID, &exp.Name, &exp.TotalAmount, &exp.PerInstallment,
		&exp.IsPerInstallmentValue, &categoryID, &purchaseDate, &exp.PaymentType,
		&cardID, &exp.StartBillingMonth, &exp.Type, &exp.Months, &exp.CreatedAt); err != nil {
		return model.Expense{}, fmt.Errorf("failed to scan expense: %w", err)
	}
	exp.CategoryID = categoryID.String
	exp.PurchaseDate = purchaseDate.String
	exp.CardID = cardID.String
	return exp, nil
}

// InsertExpense stores a new expense record and returns it. Installments are
// inserted separately; there is no atomicity between the two writes.
func (s *SQLiteStore) InsertExpense(ctx context.Context, expense model.Expense) (model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return model.Expense{}, err
	}
	if err := validateExpense(expense); err != nil {
		return model.Expense{}, err
	}

	if expense.Months < 1 {
		expense.Months = 1
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO expenses (id, owner_id, name, total_amount, per_installment,
			is_per_installment_value, category_id, purchase_date, payment_type,
			card_id, start_billing_month, type, months, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		expense.ID, expense.OwnerID, expense.Name, expense.TotalAmount, expense.PerInstallment,
		expense.IsPerInstallmentValue, nullable(expense.CategoryID), nullable(expense.PurchaseDate),
		expense.PaymentType, nullable(expense.CardID), expense.StartBillingMonth,
		expense.Type, expense.Months, expense.CreatedAt); err != nil {
		return model.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	slog.Info("created expense", "id", expense.ID, "name", expense.Name,
		"type", expense.Type, "months", expense.Months)
	return expense, nil
}

// UpdateExpense rewrites an expense's mutable fields. The installment
// count and spacing are immutable after creation; only value, category and
// name changes propagate (via RewriteInstallmentsForExpense).
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	query := `
		UPDATE expenses
		SET name = ?, total_amount = ?, per_installment = ?, is_per_installment_value = ?,
			category_id = ?, payment_type = ?, card_id = ?
		WHERE id = ? AND owner_id = ?`
	result, err := s.db.ExecContext(ctx, query,
		expense.Name, expense.TotalAmount, expense.PerInstallment, expense.IsPerInstallmentValue,
		nullable(expense.CategoryID), expense.PaymentType, nullable(expense.CardID),
		expense.ID, expense.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s not found", expense.ID)
	}
	return nil
}

// DeleteExpense removes the expense record only. Deleting its installments
// is the caller's second write.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, owner, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.execDelete(ctx, "expense", `DELETE FROM expenses WHERE id = ? AND owner_id = ?`, id, owner)
}
