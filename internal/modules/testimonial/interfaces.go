package testimonial

import (
	"context"

	"bt2horizon/internal/domain"
)

type TestimonialRepositoryInterface interface {
	ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id int64) error
}
