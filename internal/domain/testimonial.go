package domain

import "time"

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// Testimonial requires admin approval before it shows up publicly.
type Testimonial struct {
	ID         int64             `json:"id" gorm:"primaryKey"`
	UserID     *int64            `json:"user_id"`
	Name       string            `json:"name"`
	Email      *string           `json:"email,omitempty"`
	Location   *string           `json:"location,omitempty"`
	Text       string            `json:"text" gorm:"type:text"`
	Rating     int               `json:"rating"`
	Status     TestimonialStatus `json:"status"`
	AdminNotes *string           `json:"admin_notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Testimonial) TableName() string { return "testimonials" }
