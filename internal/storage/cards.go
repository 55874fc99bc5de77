package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListCards returns the owner's cards in creation order.
func (s *SQLiteStore) ListCards(ctx context.Context, owner string) ([]model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, name, created_at
		FROM cards
		WHERE owner_id = ?
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		if err := rows.Scan(&card.ID, &card.OwnerID, &card.Name, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	slog.Debug("retrieved cards", "count", len(cards))
	return cards, nil
}

// InsertCard stores a new card and returns it.
func (s *SQLiteStore) InsertCard(ctx context.Context, card model.Card) (model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return model.Card{}, err
	}
	if err := validateString(card.ID, "card.ID"); err != nil {
		return model.Card{}, err
	}
	if err := validateString(card.Name, "card.Name"); err != nil {
		return model.Card{}, err
	}

	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO cards (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, card.ID, card.OwnerID, card.Name, card.CreatedAt); err != nil {
		return model.Card{}, fmt.Errorf("failed to insert card: %w", err)
	}

	slog.Info("created card", "id", card.ID, "name", card.Name)
	return card, nil
}

// DeleteCard removes a card. Expenses and installments referencing it keep
// their dangling card id.
func (s *SQLiteStore) DeleteCard(ctx context.Context, owner, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.execDelete(ctx, "card", `DELETE FROM cards WHERE id = ? AND owner_id = ?`, id, owner)
}
