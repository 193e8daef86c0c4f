package request

import (
	"context"
	"time"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"
)

// Service enforces request visibility and the payment lifecycle.
type Service struct {
	repo RequestRepositoryInterface
}

func NewService(repo RequestRepositoryInterface) *Service {
	return &Service{repo: repo}
}

func validStatus(s string) bool {
	switch domain.RequestStatus(s) {
	case domain.RequestPending, domain.RequestInProgress, domain.RequestOnHold, domain.RequestCompleted:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch domain.RequestPaymentStatus(s) {
	case domain.PaymentNone, domain.PaymentAwaiting, domain.PaymentReceived, domain.PaymentConfirmed:
		return true
	}
	return false
}

// List applies the visibility ladder before any filter: admins see
// everything, authenticated users see their own rows, everyone else
// gets an empty set.
func (s *Service) List(ctx context.Context, caller Caller, f repository.RequestFilter) ([]*domain.Request, error) {
	switch {
	case caller.Admin:
		// filter passes through unchanged
	case caller.Authenticated:
		id := caller.ID
		f.UserID = &id
	default:
		return []*domain.Request{}, nil
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, caller Caller, id int64) (*domain.Request, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}

	if !caller.Admin {
		if !caller.Authenticated || !req.OwnedBy(caller.ID) {
			return nil, ErrForbidden
		}
	}
	return req, nil
}

// Create records a request. The user id comes from the token when the
// caller is authenticated, the body is a fallback for trusted admin
// tooling; without either the request is rejected.
func (s *Service) Create(ctx context.Context, caller Caller, in CreateRequest) (*domain.Request, error) {
	var userID *int64
	switch {
	case caller.Authenticated:
		id := caller.ID
		userID = &id
	case in.UserID != nil:
		userID = in.UserID
	default:
		return nil, ErrNoUser
	}

	req := &domain.Request{
		UserID:      userID,
		RequestType: domain.RequestType(in.RequestType),
		Title:       in.Title,
		Description: in.Description,
		RequestData: in.RequestData,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AdminUpdate applies status, notes and payment changes. The
// confirmation stamp is written exactly once, on the transition into
// payment_confirmed.
func (s *Service) AdminUpdate(ctx context.Context, adminID int64, id int64, in AdminUpdateRequest) (*domain.Request, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	var u repository.AdminUpdate

	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		st := domain.RequestStatus(*in.Status)
		u.Status = &st
	}
	if in.AdminNotes != nil {
		u.AdminNotes = in.AdminNotes
	}
	if in.PaymentInfo != nil {
		u.PaymentInfo = in.PaymentInfo
	}
	if in.PaymentStatus != nil {
		if !validPaymentStatus(*in.PaymentStatus) {
			return nil, ErrInvalidPaymentStatus
		}
		ps := domain.RequestPaymentStatus(*in.PaymentStatus)
		u.PaymentStatus = &ps

		if ps == domain.PaymentConfirmed && current.PaymentStatus != domain.PaymentConfirmed {
			now := time.Now().UTC()
			u.PaymentConfirmedAt = &now
			if adminID != 0 {
				by := adminID
				u.PaymentConfirmedBy = &by
			}
		}
	}

	if err := s.repo.ApplyAdminUpdate(ctx, id, u); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// MarkPaymentReceived is the single user-facing transition: the owner
// reports that they paid.
func (s *Service) MarkPaymentReceived(ctx context.Context, caller Caller, id int64) (*domain.Request, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}
	if !req.OwnedBy(caller.ID) {
		return nil, ErrNotOwner
	}

	if err := s.repo.SetPaymentStatus(ctx, id, domain.PaymentReceived); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
