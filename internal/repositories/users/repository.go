package users

import (
	"context"

	"github.com/dmitrijs2005/cheftube/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByIdentity(ctx context.Context, identity string) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
