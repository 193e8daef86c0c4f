package catalog

import "time"

type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

// PackageRequest accepts the modern images array or the legacy single
// img field; the service normalizes the two.
type PackageRequest struct {
	Code        string   `json:"code" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Nights      int      `json:"nights"`
	Price       string   `json:"price"`
	TripDetails *string  `json:"trip_details"`
	Img         *string  `json:"img"`
	Images      []string `json:"images"`
}

type DealRequest struct {
	Title           string    `json:"title" binding:"required"`
	Subtitle        *string   `json:"subtitle"`
	DiscountPercent *int      `json:"discount_percent"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	Active          *bool     `json:"active"`
}

type DestinationRequest struct {
	Country      string `json:"country" binding:"required"`
	City         string `json:"city" binding:"required"`
	Price        string `json:"price"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active"`
}

type CalendarDealRequest struct {
	DealDate        string  `json:"deal_date" binding:"required"`
	DealType        string  `json:"deal_type" binding:"required"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DiscountPercent *int    `json:"discount_percent"`
	Active          *bool   `json:"active"`
}
