package main

import (
	"flag"
	"log/slog"
	"os"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/migration"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		logger.Error("usage: migrate <up|down|version>")
		os.Exit(1)
	}

	if err := run(args[0], logger); err != nil {
		logger.Error("Migration failed", slog.String("command", args[0]), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string, logger *slog.Logger) error {
	postgresURL := os.Getenv("POSTGRES_URL")
	if postgresURL == "" {
		return errors.New("POSTGRES_URL environment variable is required")
	}

	m, err := migration.New(postgresURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	return migration.Run(m, command, logger)
}
