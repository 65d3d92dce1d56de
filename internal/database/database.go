package database

import (
	"context"
	_ "embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
)

//go:embed schema.sql
var schema string

func Connect() (*sqlx.DB, error) {
	return sqlx.Connect("pgx", config.DBDSN())
}

// Migrate creates the audit tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Info().Msg("database schema up to date")
	return nil
}
