package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"pta-storefront/internal/pkg/config"
	"pta-storefront/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations depends on the pool so the database is known reachable first.
func RunMigrations(_ *pgxpool.Pool, cfg config.Config) error {
	if !cfg.Migrate.OnStart {
		slog.Info("skipping migrations", "reason", "MIGRATE_ON_START=false")
		return nil
	}
	return Migrate(cfg.DB)
}

// Migrate applies every embedded migration that has not run yet.
func Migrate(dbCfg config.DBConfig) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbCfg.BuildMigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}
