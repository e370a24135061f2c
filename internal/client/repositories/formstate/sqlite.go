package formstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XVDel0Saint/fameconnect/internal/common"
	"github.com/XVDel0Saint/fameconnect/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context, key string) ([]byte, error) {
	query := `select data from form_state where key = ?`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to load form state: %w", err)
	}
	return data, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, key string, data []byte) error {
	query := `insert into form_state (key, data, updated_at)
			values (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET data = excluded.data,
				updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save form state: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query := `delete from form_state where key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete form state: %w", err)
	}
	return nil
}
