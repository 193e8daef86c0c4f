package bankdetail

type CreateBankDetailRequest struct {
	BankName      string  `json:"bank_name" binding:"required"`
	AccountName   string  `json:"account_name" binding:"required"`
	AccountNumber string  `json:"account_number" binding:"required"`
	RoutingNumber *string `json:"routing_number"`
	SwiftCode     *string `json:"swift_code"`
	BranchName    *string `json:"branch_name"`
	BranchAddress *string `json:"branch_address"`
	Currency      string  `json:"currency"`
	Instructions  *string `json:"instructions"`
	Active        *bool   `json:"active"`
}

// UpdateBankDetailRequest merges field-wise: absent fields keep their
// stored values.
type UpdateBankDetailRequest struct {
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
	RoutingNumber *string `json:"routing_number"`
	SwiftCode     *string `json:"swift_code"`
	BranchName    *string `json:"branch_name"`
	BranchAddress *string `json:"branch_address"`
	Currency      *string `json:"currency"`
	Instructions  *string `json:"instructions"`
	Active        *bool   `json:"active"`
}
