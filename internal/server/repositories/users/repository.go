// Package users defines the users repository contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/XVDel0Saint/fameconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UserNameExists(ctx context.Context, userName string) (bool, error)
}
