package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/fincontrol/fincontrol/internal/backend"
	"github.com/fincontrol/fincontrol/internal/service"
)

// DefaultDatabasePath is where the SQLite backend stores its database when
// nothing else is configured.
const DefaultDatabasePath = "$HOME/.local/share/fincontrol/fincontrol.db"

// LoadBackendConfig loads the storage backend configuration. Precedence:
// Viper configuration (config file or FINCONTROL_ env vars), then direct
// SUPABASE_* environment variables, then defaults.
func LoadBackendConfig() (backend.Config, error) {
	cfg := backend.Config{
		Type:         backend.SQLiteBackend,
		DatabasePath: ExpandPath(DefaultDatabasePath),
	}

	if v := viper.GetString("backend.type"); v != "" {
		cfg.Type = backend.Type(v)
	}
	if v := viper.GetString("database.path"); v != "" {
		cfg.DatabasePath = ExpandPath(v)
	}
	if v := viper.GetString("snapshot.path"); v != "" {
		cfg.SnapshotPath = ExpandPath(v)
	}

	cfg.SupabaseURL = viper.GetString("supabase.url")
	if cfg.SupabaseURL == "" {
		cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	}
	cfg.SupabaseKey = viper.GetString("supabase.key")
	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = os.Getenv("SUPABASE_ANON_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return backend.Config{}, err
	}
	return cfg, nil
}

// LoadSession resolves the owner every record is scoped to. Local backends
// default to a fixed single-user owner; Supabase deployments set the user's
// UUID explicitly.
func LoadSession() service.Session {
	owner := viper.GetString("session.owner")
	if owner == "" {
		owner = os.Getenv("FINCONTROL_OWNER")
	}
	if owner == "" {
		owner = "local"
	}
	return service.Session{OwnerID: owner}
}
