package testimonial

import (
	"context"
	"errors"
	"strings"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

const minTextLength = 20

type Service struct {
	repo TestimonialRepositoryInterface
}

func NewService(repo TestimonialRepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListApproved is the public feed.
func (s *Service) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.ListByStatus(ctx, domain.TestimonialApproved)
}

// ListAll is the moderation queue, every status included.
func (s *Service) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.ListByStatus(ctx, "")
}

// Submit accepts a new testimonial into the pending queue. Ratings
// default to 5 stars.
func (s *Service) Submit(ctx context.Context, userID *int64, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	if len(strings.TrimSpace(req.Text)) < minTextLength {
		return nil, ErrTextTooShort
	}

	rating := 5
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		rating = *req.Rating
	}

	t := &domain.Testimonial{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Text:     strings.TrimSpace(req.Text),
		Rating:   rating,
		Status:   domain.TestimonialPending,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Moderate sets the status and optional notes on a submission.
func (s *Service) Moderate(ctx context.Context, id int64, req ModerateRequest) (*domain.Testimonial, error) {
	status := domain.TestimonialStatus(req.Status)
	switch status {
	case domain.TestimonialPending, domain.TestimonialApproved, domain.TestimonialRejected:
	default:
		return nil, ErrInvalidStatus
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.Status = status
	if req.AdminNotes != nil {
		t.AdminNotes = req.AdminNotes
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
