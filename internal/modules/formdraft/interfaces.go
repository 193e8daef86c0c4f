package formdraft

import (
	"context"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"
)

type FormDraftRepositoryInterface interface {
	List(ctx context.Context, f repository.FormDraftFilter) ([]domain.FormDraft, error)
	GetByID(ctx context.Context, id int64) (*domain.FormDraft, error)
	Create(ctx context.Context, d *domain.FormDraft) error
	Update(ctx context.Context, d *domain.FormDraft) error
	Delete(ctx context.Context, id int64) error
}
