package bankdetail

import (
	"context"

	"bt2horizon/internal/domain"
)

type BankDetailRepositoryInterface interface {
	ListActive(ctx context.Context) ([]domain.BankDetail, error)
	GetByID(ctx context.Context, id int64) (*domain.BankDetail, error)
	Create(ctx context.Context, b *domain.BankDetail) error
	Update(ctx context.Context, b *domain.BankDetail) error
}
