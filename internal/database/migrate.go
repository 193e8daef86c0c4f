package database

import (
	"time"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. The requests table is kept
// here too even though its repository runs raw SQL, so one call sets
// up a complete database for both backends.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Package{},
		&domain.CrazyDeal{},
		&domain.AffordableDestination{},
		&domain.CalendarDeal{},
		&domain.ChatMessage{},
		&domain.TravelTrip{},
		&domain.TripParticipant{},
		&domain.FormDraft{},
		&domain.Testimonial{},
		&domain.BankDetail{},
		&requestTable{},
	)
}

// requestTable mirrors domain.Request for schema purposes only; the
// live repository reads and writes it through sqlx.
type requestTable struct {
	ID                 int64   `gorm:"primaryKey"`
	UserID             *int64  `gorm:"index"`
	RequestType        string  `gorm:"index"`
	Title              string
	Description        *string `gorm:"type:text"`
	Status             string  `gorm:"index;default:pending"`
	PaymentStatus      string  `gorm:"default:none"`
	PaymentInfo        *string `gorm:"type:text"`
	PaymentConfirmedAt *time.Time
	PaymentConfirmedBy *int64
	RequestData        []byte  `gorm:"type:text"`
	AdminNotes         *string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (requestTable) TableName() string { return "requests" }
