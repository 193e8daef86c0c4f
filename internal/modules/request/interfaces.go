package request

import (
	"context"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"
)

// RequestRepositoryInterface is the audit-trail persistence surface.
type RequestRepositoryInterface interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context, f repository.RequestFilter) ([]*domain.Request, error)
	ApplyAdminUpdate(ctx context.Context, id int64, u repository.AdminUpdate) error
	SetPaymentStatus(ctx context.Context, id int64, status domain.RequestPaymentStatus) error
}
