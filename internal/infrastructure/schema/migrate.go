// Package schema applies the embedded SQL migrations with golang-migrate.
package schema

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	migrations "github.com/riskibarqy/fantasy-football/db"
)

// New builds a migrator over an already opened database. Closing the migrator closes db.
func New(db *sql.DB, driver string) (*migrate.Migrate, error) {
	if db == nil {
		return nil, fmt.Errorf("migrate: nil database")
	}

	source, err := iofs.New(migrations.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	var (
		target database.Driver
		name   string
	)
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "pgx":
		name = "postgres"
		target, err = postgres.WithInstance(db, &postgres.Config{})
	case "sqlite":
		name = "sqlite"
		target, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("migrate: unsupported driver %q", driver)
	}
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("init %s migration driver: %w", name, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, target)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
