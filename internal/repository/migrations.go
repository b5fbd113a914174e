package repository

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending schema migrations. A dirty state
// left behind by an interrupted run is forced back to the previous
// version and the migrations are retried once.
func RunMigrations(databaseURL string) error {
	m, err := migrate.New(
		"file://internal/repository/migrations",
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	var dirty migrate.ErrDirty
	if !errors.As(err, &dirty) {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := forcePreviousVersion(m); err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rerun migrations after dirty state: %w", err)
	}
	return nil
}

func forcePreviousVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("get current migration version: %w", err)
	}
	if !dirty {
		return fmt.Errorf("dirty migration error at clean version %d", version)
	}

	forceVersion := int(version) - 1
	if forceVersion < 0 {
		forceVersion = 0
	}
	if err := m.Force(forceVersion); err != nil {
		return fmt.Errorf("force clean migration version %d: %w", forceVersion, err)
	}
	return nil
}
