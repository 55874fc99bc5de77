package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincontrol/fincontrol/internal/service"
	"github.com/fincontrol/fincontrol/internal/snapshot"
	"github.com/fincontrol/fincontrol/internal/storage"
	"github.com/fincontrol/fincontrol/internal/supabase"
)

// Open validates the config and constructs the matching store. SQLite
// stores are migrated to the expected schema version before being returned.
// Callers own the returned store and must Close it.
func Open(ctx context.Context, cfg Config) (service.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("opening backend", "type", cfg.Type)

	switch cfg.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite backend: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to migrate sqlite backend: %w", err)
		}
		return store, nil

	case SnapshotBackend:
		store, err := snapshot.NewStore(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot backend: %w", err)
		}
		return store, nil

	case SupabaseBackend:
		client, err := supabase.NewClient(supabase.Config{
			URL:    cfg.SupabaseURL,
			APIKey: cfg.SupabaseKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open supabase backend: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unknown backend type: %q", cfg.Type)
	}
}
