package domain

import "time"

type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Post) TableName() string { return "posts" }

// Package is a travel package. Images is the source of truth; the
// legacy Img column always mirrors Images[0] so old clients keep
// working.
type Package struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Nights      int       `json:"nights"`
	Price       string    `json:"price"`
	TripDetails *string   `json:"trip_details,omitempty" gorm:"type:text"`
	Img         *string   `json:"img" gorm:"column:img"`
	Images      []string  `json:"images" gorm:"serializer:json;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Package) TableName() string { return "packages" }

type CrazyDeal struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	EndDate         time.Time `json:"end_date"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CrazyDeal) TableName() string { return "crazy_deals" }

type AffordableDestination struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Price        string    `json:"price"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AffordableDestination) TableName() string { return "affordable_destinations" }

type CalendarDealType string

const (
	DealFlight  CalendarDealType = "flight"
	DealHotel   CalendarDealType = "hotel"
	DealPackage CalendarDealType = "package"
	DealVisa    CalendarDealType = "visa"
)

func (t CalendarDealType) Valid() bool {
	switch t {
	case DealFlight, DealHotel, DealPackage, DealVisa:
		return true
	}
	return false
}

// CalendarDeal is one deal per calendar day; creates upsert by DealDate.
type CalendarDeal struct {
	ID              int64            `json:"id" gorm:"primaryKey"`
	DealDate        string           `json:"deal_date" gorm:"column:deal_date;uniqueIndex"` // YYYY-MM-DD
	DealType        CalendarDealType `json:"deal_type"`
	Title           *string          `json:"title,omitempty"`
	Description     *string          `json:"description,omitempty" gorm:"type:text"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
	Active          bool             `json:"active"`
	CreatedAt       time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CalendarDeal) TableName() string { return "calendar_deals" }
