package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListInstallments returns the owner's installments in creation order, with
// series order re-derivable by (expense_id, n).
func (s *SQLiteStore) ListInstallments(ctx context.Context, owner string) ([]model.Installment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, expense_id, n, total, amount, due_month, paid,
			payment_type, card_id, name, category_id, created_at
		FROM installments
		WHERE owner_id = ?
		ORDER BY created_at, expense_id, n`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var inst model.Installment
		var cardID, categoryID sql.NullString
		if err := rows.Scan(&inst.ID, &inst.OwnerID, &inst.ExpenseID, &inst.N, &inst.Total,
			&inst.Amount, &inst.DueMonth, &inst.Paid, &inst.PaymentType,
			&cardID, &inst.Name, &categoryID, &inst.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		inst.CardID = cardID.String
		inst.CategoryID = categoryID.String
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installments: %w", err)
	}

	slog.Debug("retrieved installments", "count", len(installments))
	return installments, nil
}

// InsertInstallments stores a materialized series in one transaction so a
// series is never half-written. The preceding expense insert is still a
// separate write.
func (s *SQLiteStore) InsertInstallments(ctx context.Context, installments []model.Installment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateInstallments(installments); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO installments (id, owner_id, expense_id, n, total, amount, due_month,
			paid, payment_type, card_id, name, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, inst := range installments {
		if _, err := tx.ExecContext(ctx, query,
			inst.ID, inst.OwnerID, inst.ExpenseID, inst.N, inst.Total, inst.Amount,
			inst.DueMonth, inst.Paid, inst.PaymentType, nullable(inst.CardID),
			inst.Name, nullable(inst.CategoryID), inst.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert installment %d/%d: %w", inst.N, inst.Total, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit installments: %w", err)
	}

	slog.Info("inserted installment series",
		"expense_id", installments[0].ExpenseID, "count", len(installments))
	return nil
}

// UpdateInstallmentPaid toggles the paid flag on a single installment.
func (s *SQLiteStore) UpdateInstallmentPaid(ctx context.Context, owner, id string, paid bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE installments SET paid = ? WHERE id = ? AND owner_id = ?`, paid, id, owner)
	if err != nil {
		return fmt.Errorf("failed to update installment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("installment %s not found", id)
	}
	return nil
}

// UpdateInstallmentsPaidByCard toggles the paid flag on every installment of
// a card's statement for one month.
func (s *SQLiteStore) UpdateInstallmentsPaidByCard(ctx context.Context, owner, cardID, dueMonth string, paid bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(cardID, "cardID"); err != nil {
		return err
	}
	if err := validateString(dueMonth, "dueMonth"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE installments SET paid = ? WHERE card_id = ? AND due_month = ? AND owner_id = ?`,
		paid, cardID, dueMonth, owner); err != nil {
		return fmt.Errorf("failed to update card statement: %w", err)
	}
	return nil
}

// RewriteInstallmentsForExpense propagates an expense edit to its existing
// installments: amount, name and category are rewritten in place. Count and
// spacing are never touched; materialization does not re-run.
func (s *SQLiteStore) RewriteInstallmentsForExpense(ctx context.Context, owner, expenseID string, amount float64, name, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(expenseID, "expenseID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE installments SET amount = ?, name = ?, category_id = ? WHERE expense_id = ? AND owner_id = ?`,
		amount, name, nullable(categoryID), expenseID, owner); err != nil {
		return fmt.Errorf("failed to rewrite installments: %w", err)
	}
	return nil
}

// DeleteInstallment removes a single installment, leaving its siblings and
// the expense record untouched.
func (s *SQLiteStore) DeleteInstallment(ctx context.Context, owner, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.execDelete(ctx, "installment",
		`DELETE FROM installments WHERE id = ? AND owner_id = ?`, id, owner)
}

// DeleteInstallmentsByExpense removes every installment of an expense.
func (s *SQLiteStore) DeleteInstallmentsByExpense(ctx context.Context, owner, expenseID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(expenseID, "expenseID"); err != nil {
		return err
	}
	return s.execDelete(ctx, "installments",
		`DELETE FROM installments WHERE expense_id = ? AND owner_id = ?`, expenseID, owner)
}
