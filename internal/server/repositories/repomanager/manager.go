// Package repomanager vends repository implementations bound to a DBTX so
// services can run several repositories inside one transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/XVDel0Saint/fameconnect/internal/dbx"
	"github.com/XVDel0Saint/fameconnect/internal/server/repositories/companies"
	"github.com/XVDel0Saint/fameconnect/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Companies(db dbx.DBTX) companies.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
