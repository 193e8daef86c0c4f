package repository

import (
	"context"
	"errors"
	"strings"

	"bt2horizon/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrSeatUnavailable means the conditional seat claim matched no
	// row: the trip is gone, closed, or already at capacity.
	ErrSeatUnavailable = errors.New("trip has no open seat")
	// ErrDuplicateParticipant means the caller already holds a
	// participant row for the trip.
	ErrDuplicateParticipant = errors.New("participant already registered")
	// ErrParticipantNotFound means no participant row matched on leave.
	ErrParticipantNotFound = errors.New("participant not found")
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// TripFilter narrows the public trip listing.
type TripFilter struct {
	Status      string
	Destination string
	Country     string
}

func (r *TripRepository) List(ctx context.Context, f TripFilter) ([]domain.TravelTrip, error) {
	q := r.db.WithContext(ctx).Model(&domain.TravelTrip{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Destination != "" {
		q = q.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(f.Destination)+"%")
	}
	if f.Country != "" {
		q = q.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(f.Country)+"%")
	}

	var trips []domain.TravelTrip
	err := q.Order("start_date").Find(&trips).Error
	return trips, err
}

func (r *TripRepository) GetByID(ctx context.Context, id int64) (*domain.TravelTrip, error) {
	var t domain.TravelTrip
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) Create(ctx context.Context, t *domain.TravelTrip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TripRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.TravelTrip{}).Where("id = ?", id).
		Updates(fields).Error
}

func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.TravelTrip{}, id).Error
}

func (r *TripRepository) ListParticipants(ctx context.Context, tripID int64) ([]domain.TripParticipant, error) {
	var rows []domain.TripParticipant
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("id").Find(&rows).Error
	return rows, err
}

// FindParticipant matches by user id or case-insensitive guest email.
func (r *TripRepository) FindParticipant(ctx context.Context, tripID int64, userID *int64, guestEmail string) (*domain.TripParticipant, error) {
	q := r.db.WithContext(ctx).Where("trip_id = ?", tripID)

	switch {
	case userID != nil && guestEmail != "":
		q = q.Where("user_id = ? OR LOWER(guest_email) = ?", *userID, strings.ToLower(guestEmail))
	case userID != nil:
		q = q.Where("user_id = ?", *userID)
	case guestEmail != "":
		q = q.Where("LOWER(guest_email) = ?", strings.ToLower(guestEmail))
	default:
		return nil, gorm.ErrRecordNotFound
	}

	var p domain.TripParticipant
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Join claims a seat and records the participant in one transaction.
// The conditional UPDATE is the authoritative capacity guard: two
// concurrent joins on the last seat cannot both match the
// current_participants < max_participants predicate.
func (r *TripRepository) Join(ctx context.Context, tripID int64, p *domain.TripParticipant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.TravelTrip{}).
			Where("id = ? AND status = ? AND current_participants < max_participants", tripID, domain.TripOpen).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSeatUnavailable
		}

		if err := tx.Create(p).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateParticipant
			}
			return err
		}

		return tx.Model(&domain.TravelTrip{}).
			Where("id = ? AND current_participants >= max_participants", tripID).
			Update("status", domain.TripFull).Error
	})
}

// Leave removes the matching participant and releases the seat. The
// count never drops below zero, and status flips back to open once
// below capacity.
func (r *TripRepository) Leave(ctx context.Context, tripID int64, participantID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND trip_id = ?", participantID, tripID).
			Delete(&domain.TripParticipant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrParticipantNotFound
		}

		if err := tx.Model(&domain.TravelTrip{}).
			Where("id = ? AND current_participants > 0", tripID).
			UpdateColumn("current_participants", gorm.Expr("current_participants - 1")).Error; err != nil {
			return err
		}

		return tx.Model(&domain.TravelTrip{}).
			Where("id = ? AND status = ? AND current_participants < max_participants", tripID, domain.TripFull).
			Update("status", domain.TripOpen).Error
	})
}

// ListTripsByUser returns trips the user holds a participant row for.
func (r *TripRepository) ListTripsByUser(ctx context.Context, userID int64) ([]domain.TravelTrip, error) {
	var trips []domain.TravelTrip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_participants ON trip_participants.trip_id = travel_trips.id").
		Where("trip_participants.user_id = ?", userID).
		Order("travel_trips.start_date").
		Find(&trips).Error
	return trips, err
}
