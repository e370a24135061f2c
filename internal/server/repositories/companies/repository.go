// Package companies defines the companies repository contract and its
// PostgreSQL implementation.
package companies

import (
	"context"

	"github.com/XVDel0Saint/fameconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Company, error)
}
