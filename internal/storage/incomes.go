package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListIncomes returns the owner's incomes in creation order.
func (s *SQLiteStore) ListIncomes(ctx context.Context, owner string) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, name, amount, months, start_date, category_id, created_at
		FROM incomes
		WHERE owner_id = ?
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	var incomes []model.Income
	for rows.Next() {
		var inc model.Income
		var categoryID sql.NullString
		if err := rows.Scan(&inc.ID, &inc.OwnerID, &inc.Name, &inc.Amount, &inc.Months,
			&inc.StartDate, &categoryID, &inc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		inc.CategoryID = categoryID.String
		incomes = append(incomes, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incomes: %w", err)
	}

	slog.Debug("retrieved incomes", "count", len(incomes))
	return incomes, nil
}

// InsertIncome stores a new income and returns it.
func (s *SQLiteStore) InsertIncome(ctx context.Context, income model.Income) (model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return model.Income{}, err
	}
	if err := validateString(income.ID, "income.ID"); err != nil {
		return model.Income{}, err
	}
	if err := validateString(income.Name, "income.Name"); err != nil {
		return model.Income{}, err
	}

	if income.Months < 1 {
		income.Months = 1
	}
	if income.CreatedAt.IsZero() {
		income.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO incomes (id, owner_id, name, amount, months, start_date, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		income.ID, income.OwnerID, income.Name, income.Amount, income.Months,
		income.StartDate, nullable(income.CategoryID), income.CreatedAt); err != nil {
		return model.Income{}, fmt.Errorf("failed to insert income: %w", err)
	}

	slog.Info("created income", "id", income.ID, "name", income.Name, "amount", income.Amount)
	return income, nil
}

// UpdateIncome rewrites an income's mutable fields.
func (s *SQLiteStore) UpdateIncome(ctx context.Context, income model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(income.ID, "income.ID"); err != nil {
		return err
	}

	query := `
		UPDATE incomes
		SET name = ?, amount = ?, months = ?, start_date = ?, category_id = ?
		WHERE id = ? AND owner_id = ?`
	result, err := s.db.ExecContext(ctx, query,
		income.Name, income.Amount, income.Months, income.StartDate,
		nullable(income.CategoryID), income.ID, income.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("income %s not found", income.ID)
	}
	return nil
}

// DeleteIncome removes an income.
func (s *SQLiteStore) DeleteIncome(ctx context.Context, owner, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.execDelete(ctx, "income", `DELETE FROM incomes WHERE id = ? AND owner_id = ?`, id, owner)
}

// nullable maps an empty string to NULL so optional references stay NULL in
// the database instead of empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
