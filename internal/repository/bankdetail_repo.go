package repository

import (
	"context"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

type BankDetailRepository struct {
	db *gorm.DB
}

func NewBankDetailRepository(db *gorm.DB) *BankDetailRepository {
	return &BankDetailRepository{db: db}
}

func (r *BankDetailRepository) ListActive(ctx context.Context) ([]domain.BankDetail, error) {
	var rows []domain.BankDetail
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&rows).Error
	return rows, err
}

func (r *BankDetailRepository) GetByID(ctx context.Context, id int64) (*domain.BankDetail, error) {
	var b domain.BankDetail
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BankDetailRepository) Create(ctx context.Context, b *domain.BankDetail) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BankDetailRepository) Update(ctx context.Context, b *domain.BankDetail) error {
	return r.db.WithContext(ctx).Save(b).Error
}
