// Package migration applies the embedded schema with golang-migrate.
package migration

import (
	"log/slog"

	"storefront/internal/errors"
	"storefront/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Command names accepted by Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandVersion = "version"
)

// ErrUnknownCommand is returned by Run for unsupported commands.
var ErrUnknownCommand = errors.New("unknown migration command")

// New opens a migrator for databaseURL backed by the embedded SQL files.
func New(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return m, nil
}

// Up applies every pending migration. Having nothing to apply is not an error.
func Up(databaseURL string) error {
	m, err := New(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Run executes a single migration command against m.
func Run(m *migrate.Migrate, command string, logger *slog.Logger) error {
	switch command {
	case CommandUp:
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No pending migrations")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "migration up failed")
		}
		logger.Info("Migrations applied successfully")

	case CommandDown:
		err := m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No migrations to roll back")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "migration down failed")
		}
		logger.Info("Migration rolled back successfully")

	case CommandVersion:
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("No migrations applied yet")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read migration version")
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", command)
	}

	return nil
}
