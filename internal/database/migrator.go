package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate brings the schema to the latest embedded version over a dedicated
// connection, logging every migration step it runs.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := newSchemaMigrator(ctx, conn, logger)
	if err != nil {
		return err
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	latest := int32(len(m.Migrations))
	if from == latest {
		logger.Info().Int32("version", latest).Msg("schema up to date")
		return nil
	}

	if err := m.Migrate(ctx); err != nil {
		return migrationError(err)
	}

	logger.Info().Int32("from", from).Int32("to", latest).Msg("schema migrated")
	return nil
}

// newSchemaMigrator loads the embedded migrations. conn may be nil when the
// migrator is only inspected, never run.
func newSchemaMigrator(ctx context.Context, conn *pgx.Conn, logger *zerolog.Logger) (*tern.Migrator, error) {
	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, fmt.Errorf("preparing %s table: %w", versionTable, err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("opening embedded migrations: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	m.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("migration", name).
			Str("direction", direction).
			Msg("running migration")
	}
	return m, nil
}

// migrationError names the failing migration when postgres rejected it.
func migrationError(err error) error {
	var pgErr tern.MigrationPgError
	if errors.As(err, &pgErr) && pgErr.PgError != nil {
		return fmt.Errorf("migration %s failed (%s): %w", pgErr.MigrationName, pgErr.Code, err)
	}
	return fmt.Errorf("applying migrations: %w", err)
}
