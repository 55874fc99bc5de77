// Package backend selects and constructs the record store the application
// runs against: local SQLite, a JSON snapshot file, or a hosted Supabase
// project.
package backend

import (
	"fmt"
)

// Type names a storage backend.
type Type string

const (
	// SQLiteBackend stores records in a local SQLite database.
	SQLiteBackend Type = "sqlite"
	// SnapshotBackend stores the whole state as one JSON file.
	SnapshotBackend Type = "snapshot"
	// SupabaseBackend stores records in a hosted Supabase project.
	SupabaseBackend Type = "supabase"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true for a known backend type.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, SnapshotBackend, SupabaseBackend:
		return true
	default:
		return false
	}
}

// Types returns every valid backend type.
func Types() []Type {
	return []Type{SQLiteBackend, SnapshotBackend, SupabaseBackend}
}

// Config holds everything needed to construct any backend.
type Config struct {
	Type Type

	// SQLite specific
	DatabasePath string

	// Snapshot specific
	SnapshotPath string

	// Supabase specific
	SupabaseURL string
	SupabaseKey string
}

// Validate checks that the selected backend has the settings it needs.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %q", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.DatabasePath == "" {
			return fmt.Errorf("database path is required for the sqlite backend")
		}
	case SupabaseBackend:
		if c.SupabaseURL == "" {
			return fmt.Errorf("supabase URL is required for the supabase backend")
		}
		if c.SupabaseKey == "" {
			return fmt.Errorf("supabase API key is required for the supabase backend")
		}
	case SnapshotBackend:
		// An empty snapshot path means memory-only, which is allowed.
	}

	return nil
}
