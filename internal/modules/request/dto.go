package request

import "encoding/json"

type CreateRequest struct {
	RequestType string          `json:"requestType" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	UserID      *int64          `json:"userId"`
	RequestData json.RawMessage `json:"requestData"`
}

// AdminUpdateRequest carries the admin-side mutation. Absent fields
// stay untouched.
type AdminUpdateRequest struct {
	Status        *string `json:"status"`
	AdminNotes    *string `json:"adminNotes"`
	PaymentStatus *string `json:"paymentStatus"`
	PaymentInfo   *string `json:"paymentInfo"`
}

// Caller describes who is asking, as established by the auth
// middlewares. Key-authenticated admins have Admin set and ID zero.
type Caller struct {
	ID            int64
	Admin         bool
	Authenticated bool
}
