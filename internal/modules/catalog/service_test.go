package catalog

import (
	"context"
	"testing"
	"time"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockCatalogRepository) CreatePost(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) UpdatePost(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockCatalogRepository) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockCatalogRepository) CreatePackage(ctx context.Context, p *domain.Package) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 11
	}
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdatePackage(ctx context.Context, p *domain.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) DeletePackage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) ListActiveDeals(ctx context.Context, now time.Time) ([]domain.CrazyDeal, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.CrazyDeal), args.Error(1)
}

func (m *MockCatalogRepository) ListAllDeals(ctx context.Context) ([]domain.CrazyDeal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CrazyDeal), args.Error(1)
}

func (m *MockCatalogRepository) CreateDeal(ctx context.Context, d *domain.CrazyDeal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) UpdateDeal(ctx context.Context, d *domain.CrazyDeal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) DeleteDeal(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) ListActiveDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AffordableDestination), args.Error(1)
}

func (m *MockCatalogRepository) ListAllDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AffordableDestination), args.Error(1)
}

func (m *MockCatalogRepository) CreateDestination(ctx context.Context, d *domain.AffordableDestination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) UpdateDestination(ctx context.Context, d *domain.AffordableDestination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) DeleteDestination(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) ListCalendarDeals(ctx context.Context, f repository.CalendarDealFilter) ([]domain.CalendarDeal, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.CalendarDeal), args.Error(1)
}

func (m *MockCatalogRepository) GetCalendarDealByDate(ctx context.Context, date string) (*domain.CalendarDeal, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarDeal), args.Error(1)
}

func (m *MockCatalogRepository) CreateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) UpdateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCatalogRepository) DeleteCalendarDeal(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreatePackage_MirrorsLegacyImage(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("CreatePackage", mock.Anything, mock.AnythingOfType("*domain.Package")).Return(nil)

	svc := NewService(repo, nil)

	pkg, err := svc.CreatePackage(context.Background(), PackageRequest{
		Code:   "BT2-GRE-01",
		Title:  "Greek Islands",
		Images: []string{"/static/greece-1.jpg", "/static/greece-2.jpg"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, pkg.Img)
	assert.Equal(t, "/static/greece-1.jpg", *pkg.Img)
	assert.Len(t, pkg.Images, 2)
}

func TestService_CreatePackage_LegacyImgFoldedIn(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("CreatePackage", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil)

	img := "/static/london.jpg"
	pkg, err := svc.CreatePackage(context.Background(), PackageRequest{
		Code:  "BT2-LON-02",
		Title: "London City Break",
		Img:   &img,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"/static/london.jpg"}, pkg.Images)
	assert.Equal(t, "/static/london.jpg", *pkg.Img)
}

func TestService_CreatePackage_NoImages(t *testing.T) {
	svc := NewService(new(MockCatalogRepository), nil)

	_, err := svc.CreatePackage(context.Background(), PackageRequest{
		Code:  "BT2-X",
		Title: "No pictures",
	})

	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestService_UpdatePackage_NotFound(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetPackage", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil)

	_, err := svc.UpdatePackage(context.Background(), 99, PackageRequest{
		Code:   "BT2-X",
		Title:  "Missing",
		Images: []string{"/static/a.jpg"},
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpsertCalendarDeal_CreatesWhenMissing(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetCalendarDealByDate", mock.Anything, "2026-09-15").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateCalendarDeal", mock.Anything, mock.AnythingOfType("*domain.CalendarDeal")).Return(nil)

	svc := NewService(repo, nil)

	deal, err := svc.UpsertCalendarDeal(context.Background(), CalendarDealRequest{
		DealDate: "2026-09-15",
		DealType: "flight",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DealFlight, deal.DealType)
	assert.True(t, deal.Active)
	repo.AssertNotCalled(t, "UpdateCalendarDeal", mock.Anything, mock.Anything)
}

func TestService_UpsertCalendarDeal_OverwritesSameDay(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetCalendarDealByDate", mock.Anything, "2026-09-15").Return(&domain.CalendarDeal{
		ID:       5,
		DealDate: "2026-09-15",
		DealType: domain.DealFlight,
	}, nil)
	repo.On("UpdateCalendarDeal", mock.Anything, mock.MatchedBy(func(d *domain.CalendarDeal) bool {
		return d.ID == 5 && d.DealType == domain.DealHotel
	})).Return(nil)

	svc := NewService(repo, nil)

	deal, err := svc.UpsertCalendarDeal(context.Background(), CalendarDealRequest{
		DealDate: "2026-09-15",
		DealType: "hotel",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), deal.ID)
	repo.AssertExpectations(t)
}

func TestService_UpsertCalendarDeal_RejectsBadInput(t *testing.T) {
	svc := NewService(new(MockCatalogRepository), nil)

	_, err := svc.UpsertCalendarDeal(context.Background(), CalendarDealRequest{
		DealDate: "15/09/2026",
		DealType: "flight",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.UpsertCalendarDeal(context.Background(), CalendarDealRequest{
		DealDate: "2026-09-15",
		DealType: "cruise",
	})
	assert.ErrorIs(t, err, ErrInvalidDealType)
}
