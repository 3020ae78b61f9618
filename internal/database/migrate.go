package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all up migrations found at migrationsPath to the database
// at dbPath. fresh reports whether the database had no schema before this call.
func RunMigrations(dbPath, migrationsPath string) (fresh bool, err error) {
	dsn := fmt.Sprintf("sqlite3://%s?_foreign_keys=on", dbPath)

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return false, fmt.Errorf("load migrations: %w", err)
	}
	defer m.Close()

	if _, _, err := m.Version(); err != nil {
		if !errors.Is(err, migrate.ErrNilVersion) {
			return false, fmt.Errorf("read schema version: %w", err)
		}
		fresh = true
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return fresh, nil
}
