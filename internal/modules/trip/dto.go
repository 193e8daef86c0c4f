package trip

import (
	"bt2horizon/internal/domain"

	"gorm.io/datatypes"
)

type TripRequest struct {
	Title           string         `json:"title" binding:"required"`
	Description     string         `json:"description"`
	Destination     string         `json:"destination" binding:"required"`
	Country         string         `json:"country" binding:"required"`
	StartDate       string         `json:"start_date" binding:"required"`
	EndDate         string         `json:"end_date" binding:"required"`
	MaxParticipants int            `json:"max_participants" binding:"required,min=1"`
	PricePerPerson  *float64       `json:"price_per_person"`
	ImageURL        *string        `json:"image_url"`
	Images          []string       `json:"images"`
	Itinerary       datatypes.JSON `json:"itinerary"`
	Included        datatypes.JSON `json:"included"`
	Requirements    *string        `json:"requirements"`
	Status          *string        `json:"status"`
}

type JoinRequest struct {
	GuestName  *string `json:"guestName"`
	GuestEmail *string `json:"guestEmail"`
	GuestPhone *string `json:"guestPhone"`
	Notes      *string `json:"notes"`
}

type LeaveRequest struct {
	GuestEmail *string `json:"guestEmail"`
}

// TripDetail is the get-by-id shape: the trip plus its participants.
type TripDetail struct {
	domain.TravelTrip
	Participants []domain.TripParticipant `json:"participants"`
}

// Caller identity as established by the auth middlewares.
type Caller struct {
	ID            int64
	Authenticated bool
}
