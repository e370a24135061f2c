package companies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XVDel0Saint/fameconnect/internal/common"
	"github.com/XVDel0Saint/fameconnect/internal/dbx"
	"github.com/XVDel0Saint/fameconnect/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {

	query :=
		`INSERT INTO companies (user_id, company_name, address_line, city, region, country, year_established, website, brochure_path)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		company.UserID, company.CompanyName, company.AddressLine, company.City,
		company.Region, company.Country, company.YearEstablished,
		company.Website, company.BrochurePath).Scan(&company.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int64) (*models.Company, error) {
	query :=
		`SELECT id, user_id, company_name, address_line, city, region, country, year_established, website, brochure_path
		 FROM companies
		 WHERE user_id = $1
		 `

	company := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&company.ID, &company.UserID, &company.CompanyName, &company.AddressLine,
		&company.City, &company.Region, &company.Country, &company.YearEstablished,
		&company.Website, &company.BrochurePath)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}
