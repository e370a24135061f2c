// Package client initializes the CLI's local SQLite database and vends the
// repositories bound to it.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XVDel0Saint/fameconnect/internal/client/migrations"
	"github.com/XVDel0Saint/fameconnect/internal/client/repositories/formstate"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local data access objects the CLI needs.
type Repositories struct {
	FormState formstate.Repository
}

// RunMigrations applies the embedded client migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, applies migrations and
// returns the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		FormState: formstate.NewSQLiteRepository(db),
	}, nil
}
