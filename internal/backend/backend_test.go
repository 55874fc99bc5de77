package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "unknown type",
			config:  Config{Type: Type("redis")},
			wantErr: true,
		},
		{
			name:    "sqlite without path",
			config:  Config{Type: SQLiteBackend},
			wantErr: true,
		},
		{
			name:   "sqlite with path",
			config: Config{Type: SQLiteBackend, DatabasePath: "/tmp/fincontrol.db"},
		},
		{
			name:   "snapshot without path is memory-only",
			config: Config{Type: SnapshotBackend},
		},
		{
			name:    "supabase without key",
			config:  Config{Type: SupabaseBackend, SupabaseURL: "https://x.supabase.co"},
			wantErr: true,
		},
		{
			name:    "supabase without url",
			config:  Config{Type: SupabaseBackend, SupabaseKey: "anon-key"},
			wantErr: true,
		},
		{
			name: "supabase complete",
			config: Config{
				Type:        SupabaseBackend,
				SupabaseURL: "https://x.supabase.co",
				SupabaseKey: "anon-key",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, bt := range Types() {
		assert.True(t, bt.IsValid(), bt.String())
	}
	assert.False(t, Type("").IsValid())
	assert.False(t, Type("postgres").IsValid())
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Config{
		Type:         SQLiteBackend,
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	cards, err := store.ListCards(ctx, "owner")
	require.NoError(t, err, "migrations must have created the schema")
	assert.Empty(t, cards)
}

func TestOpenSnapshot(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Config{Type: SnapshotBackend})
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	categories, err := store.ListCategories(ctx, "owner")
	require.NoError(t, err)
	assert.NotEmpty(t, categories, "snapshot store seeds default categories")
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), Config{Type: Type("redis")})
	assert.Error(t, err)
}
