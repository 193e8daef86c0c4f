package bankdetail

import (
	"context"
	"errors"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

const defaultCurrency = "USD"

type Service struct {
	repo BankDetailRepositoryInterface
}

func NewService(repo BankDetailRepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.BankDetail, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateBankDetailRequest) (*domain.BankDetail, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	b := &domain.BankDetail{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		RoutingNumber: req.RoutingNumber,
		SwiftCode:     req.SwiftCode,
		BranchName:    req.BranchName,
		BranchAddress: req.BranchAddress,
		Currency:      currency,
		Instructions:  req.Instructions,
		Active:        req.Active == nil || *req.Active,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update merges set fields into the stored row.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBankDetailRequest) (*domain.BankDetail, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.BankName != nil {
		b.BankName = *req.BankName
	}
	if req.AccountName != nil {
		b.AccountName = *req.AccountName
	}
	if req.AccountNumber != nil {
		b.AccountNumber = *req.AccountNumber
	}
	if req.RoutingNumber != nil {
		b.RoutingNumber = req.RoutingNumber
	}
	if req.SwiftCode != nil {
		b.SwiftCode = req.SwiftCode
	}
	if req.BranchName != nil {
		b.BranchName = req.BranchName
	}
	if req.BranchAddress != nil {
		b.BranchAddress = req.BranchAddress
	}
	if req.Currency != nil && *req.Currency != "" {
		b.Currency = *req.Currency
	}
	if req.Instructions != nil {
		b.Instructions = req.Instructions
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
