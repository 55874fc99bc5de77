package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListCategories returns the owner's categories in creation order.
func (s *SQLiteStore) ListCategories(ctx context.Context, owner string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, name, type, created_at
		FROM categories
		WHERE owner_id = ?
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.OwnerID, &cat.Name, &cat.Type, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// InsertCategory stores a new category and returns it.
func (s *SQLiteStore) InsertCategory(ctx context.Context, category model.Category) (model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return model.Category{}, err
	}
	if err := validateString(category.ID, "category.ID"); err != nil {
		return model.Category{}, err
	}
	if err := validateString(category.Name, "category.Name"); err != nil {
		return model.Category{}, err
	}
	if !category.Type.IsValid() {
		return model.Category{}, fmt.Errorf("%w: unknown category type %q", ErrInvalidRecord, category.Type)
	}

	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO categories (id, owner_id, name, type, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		category.ID, category.OwnerID, category.Name, category.Type, category.CreatedAt); err != nil {
		return model.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	slog.Info("created category", "id", category.ID, "name", category.Name, "type", category.Type)
	return category, nil
}

// DeleteCategory removes a category. No cascading cleanup happens: records
// still referencing it keep their now-dangling category id and display logic
// renders them as a removed category.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, owner, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.execDelete(ctx, "category", `DELETE FROM categories WHERE id = ? AND owner_id = ?`, id, owner)
}
