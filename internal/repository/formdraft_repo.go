package repository

import (
	"context"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

type FormDraftRepository struct {
	db *gorm.DB
}

func NewFormDraftRepository(db *gorm.DB) *FormDraftRepository {
	return &FormDraftRepository{db: db}
}

type FormDraftFilter struct {
	UserID   *int64
	FormType string
	Status   string
}

func (r *FormDraftRepository) List(ctx context.Context, f FormDraftFilter) ([]domain.FormDraft, error) {
	q := r.db.WithContext(ctx).Model(&domain.FormDraft{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.FormType != "" {
		q = q.Where("form_type = ?", f.FormType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var drafts []domain.FormDraft
	err := q.Order("last_saved_at DESC").Find(&drafts).Error
	return drafts, err
}

func (r *FormDraftRepository) GetByID(ctx context.Context, id int64) (*domain.FormDraft, error) {
	var d domain.FormDraft
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *FormDraftRepository) Create(ctx context.Context, d *domain.FormDraft) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *FormDraftRepository) Update(ctx context.Context, d *domain.FormDraft) error {
	return r.db.WithContext(ctx).Model(&domain.FormDraft{}).Where("id = ?", d.ID).
		Updates(map[string]any{
			"form_data":        d.FormData,
			"progress_percent": d.ProgressPercent,
			"status":           d.Status,
			"last_saved_at":    d.LastSavedAt,
		}).Error
}

func (r *FormDraftRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.FormDraft{}, id).Error
}
