package trip

import (
	"context"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"
)

type TripRepositoryInterface interface {
	List(ctx context.Context, f repository.TripFilter) ([]domain.TravelTrip, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelTrip, error)
	Create(ctx context.Context, t *domain.TravelTrip) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error

	ListParticipants(ctx context.Context, tripID int64) ([]domain.TripParticipant, error)
	FindParticipant(ctx context.Context, tripID int64, userID *int64, guestEmail string) (*domain.TripParticipant, error)
	Join(ctx context.Context, tripID int64, p *domain.TripParticipant) error
	Leave(ctx context.Context, tripID int64, participantID int64) error
	ListTripsByUser(ctx context.Context, userID int64) ([]domain.TravelTrip, error)
}

// RequestWriter is the audit sink for join registrations.
type RequestWriter interface {
	Create(ctx context.Context, req *domain.Request) error
}
