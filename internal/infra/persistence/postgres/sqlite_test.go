package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the tables the
// repository tests touch. The production schema lives in the Postgres
// migrations; this mirrors just enough of it for SQLite, with the
// server-side uuid defaults dropped because tests preset their ids.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	// An in-memory database exists per connection, so keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	ddl := []string{
		`CREATE TABLE weight_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			weight TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT 'lbs',
			entry_type TEXT NOT NULL DEFAULT 'manual',
			photo_path TEXT,
			notes TEXT,
			recorded_at DATETIME NOT NULL,
			created_at DATETIME
		)`,
		`CREATE TABLE business_profiles (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT,
			location TEXT,
			latitude REAL,
			longitude REAL,
			phone TEXT,
			email TEXT,
			website TEXT,
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE recommendations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			business_id TEXT NOT NULL,
			rec_type TEXT NOT NULL DEFAULT 'personalized',
			score REAL NOT NULL,
			reason TEXT,
			viewed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
