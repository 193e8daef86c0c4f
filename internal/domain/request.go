package domain

import (
	"encoding/json"
	"time"
)

// RequestType classifies where a request came from. Free-form values
// are allowed for requests created through the generic endpoint.
type RequestType string

const (
	RequestBooking     RequestType = "booking"
	RequestPackage     RequestType = "package"
	RequestPassport    RequestType = "passport"
	RequestVisa        RequestType = "visa"
	RequestTravelPlan  RequestType = "travel_plan"
	RequestTravelBuddy RequestType = "travel_buddy"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestOnHold     RequestStatus = "on_hold"
	RequestCompleted  RequestStatus = "completed"
)

type RequestPaymentStatus string

const (
	PaymentNone      RequestPaymentStatus = "none"
	PaymentAwaiting  RequestPaymentStatus = "awaiting_payment"
	PaymentReceived  RequestPaymentStatus = "payment_received"
	PaymentConfirmed RequestPaymentStatus = "payment_confirmed"
)

// Request is the persisted, trackable record behind every lead, travel
// plan and trip-join submission. Rows are never deleted via the API.
type Request struct {
	ID                 int64                `db:"id" json:"id"`
	UserID             *int64               `db:"user_id" json:"user_id"` // nil for guests
	RequestType        RequestType          `db:"request_type" json:"request_type"`
	Title              string               `db:"title" json:"title"`
	Description        *string              `db:"description" json:"description,omitempty"`
	Status             RequestStatus        `db:"status" json:"status"`
	PaymentStatus      RequestPaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentInfo        *string              `db:"payment_info" json:"payment_info,omitempty"`
	PaymentConfirmedAt *time.Time           `db:"payment_confirmed_at" json:"payment_confirmed_at,omitempty"`
	PaymentConfirmedBy *int64               `db:"payment_confirmed_by" json:"payment_confirmed_by,omitempty"`
	RequestData        json.RawMessage      `db:"request_data" json:"request_data,omitempty"`
	AdminNotes         *string              `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt          time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time            `db:"updated_at" json:"updated_at"`
}

func (r *Request) OwnedBy(userID int64) bool {
	return r.UserID != nil && *r.UserID == userID
}
