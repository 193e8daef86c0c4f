package formdraft

import (
	"context"
	"errors"
	"time"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repo FormDraftRepositoryInterface
}

func NewService(repo FormDraftRepositoryInterface) *Service {
	return &Service{repo: repo}
}

func validDraftStatus(s string) bool {
	switch domain.FormDraftStatus(s) {
	case domain.DraftInProgress, domain.DraftSubmitted:
		return true
	}
	return false
}

func (s *Service) List(ctx context.Context, f repository.FormDraftFilter) ([]domain.FormDraft, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.FormDraft, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, req CreateDraftRequest) (*domain.FormDraft, error) {
	status := domain.DraftInProgress
	if req.Status != nil {
		if !validDraftStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		status = domain.FormDraftStatus(*req.Status)
	}

	progress := domain.ComputeFormProgress(req.FormData)
	if req.ProgressPercent != nil {
		progress = *req.ProgressPercent
	}

	draft := &domain.FormDraft{
		UserID:          req.UserID,
		FormType:        req.FormType,
		FormData:        req.FormData,
		ProgressPercent: progress,
		Status:          status,
		LastSavedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Update merges the partial save into the stored draft and refreshes
// last_saved_at. Progress is recomputed from the new form data unless
// the client supplied its own figure.
func (s *Service) Update(ctx context.Context, id int64, req UpdateDraftRequest) (*domain.FormDraft, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FormData != nil {
		draft.FormData = req.FormData
		draft.ProgressPercent = domain.ComputeFormProgress(req.FormData)
	}
	if req.ProgressPercent != nil {
		draft.ProgressPercent = *req.ProgressPercent
	}
	if req.Status != nil {
		if !validDraftStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		draft.Status = domain.FormDraftStatus(*req.Status)
	}
	draft.LastSavedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
