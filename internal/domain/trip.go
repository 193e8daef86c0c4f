package domain

import (
	"time"

	"gorm.io/datatypes"
)

type TripStatus string

const (
	TripOpen      TripStatus = "open"
	TripFull      TripStatus = "full"
	TripCancelled TripStatus = "cancelled"
	TripCompleted TripStatus = "completed"
)

// TravelTrip is a group trip clients can join. CurrentParticipants is
// denormalized for listing; join/leave mutate it only through
// conditional updates inside a transaction so it can never exceed
// MaxParticipants.
type TravelTrip struct {
	ID                  int64          `json:"id" gorm:"primaryKey"`
	Title               string         `json:"title" validate:"required"`
	Description         string         `json:"description" gorm:"type:text"`
	Destination         string         `json:"destination" validate:"required"`
	Country             string         `json:"country" validate:"required"`
	StartDate           string         `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate             string         `json:"end_date" validate:"required"`
	MaxParticipants     int            `json:"max_participants"`
	CurrentParticipants int            `json:"current_participants"`
	PricePerPerson      *float64       `json:"price_per_person,omitempty"`
	ImageURL            *string        `json:"image_url" gorm:"column:image_url"`
	Images              []string       `json:"images" gorm:"serializer:json;type:text"`
	Itinerary           datatypes.JSON `json:"itinerary,omitempty"`
	Included            datatypes.JSON `json:"included,omitempty"`
	Requirements        *string        `json:"requirements,omitempty" gorm:"type:text"`
	Status              TripStatus     `json:"status"`
	CreatedAt           time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (TravelTrip) TableName() string { return "travel_trips" }

// TripParticipant links a trip to a registered user or a guest by
// email. One row per identity per trip.
type TripParticipant struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	TripID     int64     `json:"trip_id" gorm:"index;uniqueIndex:idx_trip_user,priority:1"`
	UserID     *int64    `json:"user_id" gorm:"uniqueIndex:idx_trip_user,priority:2"`
	GuestName  *string   `json:"guest_name,omitempty"`
	GuestEmail *string   `json:"guest_email,omitempty"`
	GuestPhone *string   `json:"guest_phone,omitempty"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (TripParticipant) TableName() string { return "trip_participants" }
