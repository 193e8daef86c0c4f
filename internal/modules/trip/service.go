package trip

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/pkg/mailer"
	"bt2horizon/internal/pkg/validator"
	"bt2horizon/internal/repository"

	"gorm.io/gorm"
)

// Service owns the travel-buddy rules: image normalization, the join
// guard chain, seat accounting delegated to the repository transaction,
// and the advisory notification pipeline after a successful join.
type Service struct {
	trips    TripRepositoryInterface
	requests RequestWriter
	mail     mailer.Mailer
}

func NewService(trips TripRepositoryInterface, requests RequestWriter, mail mailer.Mailer) *Service {
	return &Service{trips: trips, requests: requests, mail: mail}
}

func validTripStatus(s string) bool {
	switch domain.TripStatus(s) {
	case domain.TripOpen, domain.TripFull, domain.TripCancelled, domain.TripCompleted:
		return true
	}
	return false
}

// normalizeImages mirrors the package rule: images array authoritative,
// legacy image_url folded in, image_url kept equal to images[0].
func normalizeImages(imageURL *string, images []string) (*string, []string, error) {
	out := make([]string, 0, len(images))
	for _, u := range images {
		if u != "" {
			out = append(out, u)
		}
	}
	if len(out) == 0 && imageURL != nil && *imageURL != "" {
		out = append(out, *imageURL)
	}
	if len(out) == 0 {
		return nil, nil, ErrImageRequired
	}
	first := out[0]
	return &first, out, nil
}

func (s *Service) List(ctx context.Context, f repository.TripFilter) ([]domain.TravelTrip, error) {
	return s.trips.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*TripDetail, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	participants, err := s.trips.ListParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TripDetail{TravelTrip: *trip, Participants: participants}, nil
}

func (s *Service) Create(ctx context.Context, req TripRequest) (*domain.TravelTrip, error) {
	imageURL, images, err := normalizeImages(req.ImageURL, req.Images)
	if err != nil {
		return nil, err
	}

	trip := &domain.TravelTrip{
		Title:           req.Title,
		Description:     req.Description,
		Destination:     req.Destination,
		Country:         req.Country,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
		PricePerPerson:  req.PricePerPerson,
		ImageURL:        imageURL,
		Images:          images,
		Itinerary:       req.Itinerary,
		Included:        req.Included,
		Requirements:    req.Requirements,
		Status:          domain.TripOpen,
	}
	if fieldErrs := validator.Validate(trip); fieldErrs != nil {
		return nil, ErrMissingFields
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *Service) Update(ctx context.Context, id int64, req TripRequest) (*domain.TravelTrip, error) {
	if _, err := s.trips.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	imageURL, images, err := normalizeImages(req.ImageURL, req.Images)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":            req.Title,
		"description":      req.Description,
		"destination":      req.Destination,
		"country":          req.Country,
		"start_date":       req.StartDate,
		"end_date":         req.EndDate,
		"max_participants": req.MaxParticipants,
		"price_per_person": req.PricePerPerson,
		"image_url":        imageURL,
		"images":           images,
		"itinerary":        req.Itinerary,
		"included":         req.Included,
		"requirements":     req.Requirements,
	}
	if req.Status != nil {
		if !validTripStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}

	if err := s.trips.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.trips.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.trips.Delete(ctx, id)
}

// Join registers the caller on a trip. Pre-checks give friendly errors;
// the repository transaction is the authoritative guard, so a race on
// the last seat still resolves to exactly one winner.
func (s *Service) Join(ctx context.Context, caller Caller, tripID int64, req JoinRequest) (*domain.TravelTrip, error) {
	var userID *int64
	guestEmail := ""
	if caller.Authenticated {
		id := caller.ID
		userID = &id
	} else {
		if req.GuestEmail == nil || *req.GuestEmail == "" {
			return nil, ErrIdentityRequired
		}
		guestEmail = *req.GuestEmail
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if trip.Status != domain.TripOpen {
		return nil, ErrTripNotOpen
	}
	if trip.CurrentParticipants >= trip.MaxParticipants {
		return nil, ErrTripFull
	}

	if existing, err := s.trips.FindParticipant(ctx, tripID, userID, guestEmail); err == nil && existing != nil {
		return nil, ErrAlreadyJoined
	}

	participant := &domain.TripParticipant{
		TripID:     tripID,
		UserID:     userID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		Status:     "confirmed",
		Notes:      req.Notes,
	}

	if err := s.trips.Join(ctx, tripID, participant); err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatUnavailable):
			return nil, ErrTripFull
		case errors.Is(err, repository.ErrDuplicateParticipant):
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}

	s.notifyJoin(ctx, trip, participant)
	return s.trips.GetByID(ctx, tripID)
}

// notifyJoin runs the advisory post-commit steps: operator email and a
// requests-row audit insert. Failures are logged and swallowed, the
// seat is already claimed.
func (s *Service) notifyJoin(ctx context.Context, trip *domain.TravelTrip, p *domain.TripParticipant) {
	n := mailer.TravelBuddyNotification{
		TripTitle:   trip.Title,
		Destination: trip.Destination,
		Country:     trip.Country,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
	}
	if p.GuestName != nil {
		n.GuestName = *p.GuestName
	}
	if p.GuestEmail != nil {
		n.GuestEmail = *p.GuestEmail
	}
	if p.GuestPhone != nil {
		n.GuestPhone = *p.GuestPhone
	}
	if p.Notes != nil {
		n.Notes = *p.Notes
	}
	if err := s.mail.SendTravelBuddyNotification(ctx, n); err != nil {
		log.Printf("trip: join notification email failed: %v", err)
	}

	data, _ := json.Marshal(p)
	audit := &domain.Request{
		UserID:      p.UserID,
		RequestType: domain.RequestTravelBuddy,
		Title:       "Travel Buddy: " + trip.Title,
		RequestData: data,
	}
	if err := s.requests.Create(ctx, audit); err != nil {
		log.Printf("trip: join audit insert failed: %v", err)
	}
}

// Leave removes the caller's registration and releases the seat.
func (s *Service) Leave(ctx context.Context, caller Caller, tripID int64, req LeaveRequest) (*domain.TravelTrip, error) {
	var userID *int64
	guestEmail := ""
	if caller.Authenticated {
		id := caller.ID
		userID = &id
	} else {
		if req.GuestEmail == nil || *req.GuestEmail == "" {
			return nil, ErrIdentityRequired
		}
		guestEmail = *req.GuestEmail
	}

	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	participant, err := s.trips.FindParticipant(ctx, tripID, userID, guestEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	if err := s.trips.Leave(ctx, tripID, participant.ID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}
	return s.trips.GetByID(ctx, tripID)
}

func (s *Service) TripsForUser(ctx context.Context, userID int64) ([]domain.TravelTrip, error) {
	return s.trips.ListTripsByUser(ctx, userID)
}
