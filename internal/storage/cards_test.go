package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestCardCRUD(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	t.Run("insert and list", func(t *testing.T) {
		card, err := store.InsertCard(ctx, model.Card{ID: "c1", Name: "Nubank"})
		require.NoError(t, err)
		assert.False(t, card.CreatedAt.IsZero())

		_, err = store.InsertCard(ctx, model.Card{ID: "c2", Name: "Itaú"})
		require.NoError(t, err)

		cards, err := store.ListCards(ctx, "")
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "Nubank", cards[0].Name)
		assert.Equal(t, "Itaú", cards[1].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteCard(ctx, "", "c1"))

		cards, err := store.ListCards(ctx, "")
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "c2", cards[0].ID)
	})

	t.Run("missing id rejected", func(t *testing.T) {
		_, err := store.InsertCard(ctx, model.Card{Name: "No ID"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestCardsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.InsertCard(ctx, model.Card{ID: "mine", Name: "Mine", OwnerID: "user-a"})
	require.NoError(t, err)
	_, err = store.InsertCard(ctx, model.Card{ID: "theirs", Name: "Theirs", OwnerID: "user-b"})
	require.NoError(t, err)

	mine, err := store.ListCards(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].ID)

	// Deleting under the wrong owner is a no-op.
	require.NoError(t, store.DeleteCard(ctx, "user-a", "theirs"))
	theirs, err := store.ListCards(ctx, "user-b")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
