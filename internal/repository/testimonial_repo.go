package repository

import (
	"context"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&domain.Testimonial{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []domain.Testimonial
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Model(&domain.Testimonial{}).Where("id = ?", t.ID).
		Updates(map[string]any{
			"status":      t.Status,
			"admin_notes": t.AdminNotes,
		}).Error
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Testimonial{}, id).Error
}
