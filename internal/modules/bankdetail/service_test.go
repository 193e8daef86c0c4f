package bankdetail

import (
	"context"
	"testing"

	"bt2horizon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBankDetailRepository struct {
	mock.Mock
}

func (m *MockBankDetailRepository) ListActive(ctx context.Context) ([]domain.BankDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BankDetail), args.Error(1)
}

func (m *MockBankDetailRepository) GetByID(ctx context.Context, id int64) (*domain.BankDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankDetail), args.Error(1)
}

func (m *MockBankDetailRepository) Create(ctx context.Context, b *domain.BankDetail) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 3
	}
	return args.Error(0)
}

func (m *MockBankDetailRepository) Update(ctx context.Context, b *domain.BankDetail) error {
	return m.Called(ctx, b).Error(0)
}

func TestService_Create_DefaultsCurrencyAndActive(t *testing.T) {
	repo := new(MockBankDetailRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankDetail")).Return(nil)

	svc := NewService(repo)

	b, err := svc.Create(context.Background(), CreateBankDetailRequest{
		BankName:      "Horizon Bank",
		AccountName:   "BT2 Horizon Ltd",
		AccountNumber: "0012345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "USD", b.Currency)
	assert.True(t, b.Active)
}

func TestService_Update_MergesFieldWise(t *testing.T) {
	swift := "HZBKUS33"
	repo := new(MockBankDetailRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.BankDetail{
		ID:            3,
		BankName:      "Horizon Bank",
		AccountName:   "BT2 Horizon Ltd",
		AccountNumber: "0012345678",
		SwiftCode:     &swift,
		Currency:      "USD",
		Active:        true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	newName := "Horizon Bank PLC"
	inactive := false
	b, err := svc.Update(context.Background(), 3, UpdateBankDetailRequest{
		BankName: &newName,
		Active:   &inactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Horizon Bank PLC", b.BankName)
	assert.False(t, b.Active)
	// Untouched fields survive the merge.
	assert.Equal(t, "0012345678", b.AccountNumber)
	assert.Equal(t, &swift, b.SwiftCode)
}
