package domain

import "time"

// BankDetail is the company account information shown to clients who
// pay by transfer. Public reads only return active rows.
type BankDetail struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	RoutingNumber *string   `json:"routing_number,omitempty"`
	SwiftCode     *string   `json:"swift_code,omitempty"`
	BranchName    *string   `json:"branch_name,omitempty"`
	BranchAddress *string   `json:"branch_address,omitempty"`
	Currency      string    `json:"currency"`
	Instructions  *string   `json:"instructions,omitempty" gorm:"type:text"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (BankDetail) TableName() string { return "bank_details" }
