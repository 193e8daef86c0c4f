package auth

import (
	"context"

	"bt2horizon/internal/domain"
)

// UserRepositoryInterface is the persistence surface the service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}
