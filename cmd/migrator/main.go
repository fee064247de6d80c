package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationPath, databaseURL string
	var down bool
	flag.StringVar(&databaseURL, "database_url", os.Getenv("DATABASE_URL"), "postgres connection URL")
	flag.StringVar(&migrationPath, "migration-path", "migrations", "directory with migration files")
	flag.BoolVar(&down, "down", false, "roll back all migrations")
	flag.Parse()

	if databaseURL == "" {
		slog.Error("database URL is required")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+migrationPath, databaseURL)
	if err != nil {
		slog.Error("open migrations failed", "err", err, "path", migrationPath)
		os.Exit(1)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no migrations to apply")
			return
		}
		slog.Error("migration failed", "err", err)
		os.Exit(1)
	}

	version, dirty, _ := m.Version()
	slog.Info("migrations applied", "version", version, "dirty", dirty)
}
