package trip

import (
	"context"
	"testing"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/pkg/mailer"
	"bt2horizon/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) List(ctx context.Context, f repository.TripFilter) ([]domain.TravelTrip, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.TravelTrip), args.Error(1)
}

func (m *MockTripRepository) GetByID(ctx context.Context, id int64) (*domain.TravelTrip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelTrip), args.Error(1)
}

func (m *MockTripRepository) Create(ctx context.Context, t *domain.TravelTrip) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = 10
	}
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTripRepository) ListParticipants(ctx context.Context, tripID int64) ([]domain.TripParticipant, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]domain.TripParticipant), args.Error(1)
}

func (m *MockTripRepository) FindParticipant(ctx context.Context, tripID int64, userID *int64, guestEmail string) (*domain.TripParticipant, error) {
	args := m.Called(ctx, tripID, userID, guestEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripParticipant), args.Error(1)
}

func (m *MockTripRepository) Join(ctx context.Context, tripID int64, p *domain.TripParticipant) error {
	return m.Called(ctx, tripID, p).Error(0)
}

func (m *MockTripRepository) Leave(ctx context.Context, tripID int64, participantID int64) error {
	return m.Called(ctx, tripID, participantID).Error(0)
}

func (m *MockTripRepository) ListTripsByUser(ctx context.Context, userID int64) ([]domain.TravelTrip, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.TravelTrip), args.Error(1)
}

type MockRequestWriter struct {
	mock.Mock
}

func (m *MockRequestWriter) Create(ctx context.Context, req *domain.Request) error {
	return m.Called(ctx, req).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendLeadNotification(ctx context.Context, n mailer.LeadNotification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockMailer) SendTravelPeriodNotification(ctx context.Context, n mailer.TravelPeriodNotification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockMailer) SendTravelBuddyNotification(ctx context.Context, n mailer.TravelBuddyNotification) error {
	return m.Called(ctx, n).Error(0)
}

func openTrip(id int64, current, max int) *domain.TravelTrip {
	img := "/static/trip.jpg"
	return &domain.TravelTrip{
		ID:                  id,
		Title:               "Sahara Expedition",
		Destination:         "Merzouga",
		Country:             "Morocco",
		StartDate:           "2026-11-01",
		EndDate:             "2026-11-10",
		MaxParticipants:     max,
		CurrentParticipants: current,
		ImageURL:            &img,
		Images:              []string{img},
		Status:              domain.TripOpen,
	}
}

func newTestService(trips *MockTripRepository) (*Service, *MockRequestWriter, *MockMailer) {
	writer := new(MockRequestWriter)
	mail := new(MockMailer)
	return NewService(trips, writer, mail), writer, mail
}

func TestService_Create_RequiresImage(t *testing.T) {
	svc, _, _ := newTestService(new(MockTripRepository))

	_, err := svc.Create(context.Background(), TripRequest{
		Title:           "No pictures",
		Destination:     "X",
		Country:         "Y",
		StartDate:       "2026-01-01",
		EndDate:         "2026-01-05",
		MaxParticipants: 10,
	})

	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestService_Create_MirrorsLegacyImageURL(t *testing.T) {
	trips := new(MockTripRepository)
	trips.On("Create", mock.Anything, mock.AnythingOfType("*domain.TravelTrip")).Return(nil)

	svc, _, _ := newTestService(trips)

	trip, err := svc.Create(context.Background(), TripRequest{
		Title:           "Sahara Expedition",
		Destination:     "Merzouga",
		Country:         "Morocco",
		StartDate:       "2026-11-01",
		EndDate:         "2026-11-10",
		MaxParticipants: 12,
		Images:          []string{"/static/a.jpg", "/static/b.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "/static/a.jpg", *trip.ImageURL)
	assert.Equal(t, domain.TripOpen, trip.Status)
	assert.Equal(t, 0, trip.CurrentParticipants)
}

func TestService_Join_GuestNeedsEmail(t *testing.T) {
	svc, _, _ := newTestService(new(MockTripRepository))

	_, err := svc.Join(context.Background(), Caller{}, 1, JoinRequest{})

	assert.ErrorIs(t, err, ErrIdentityRequired)
}

func TestService_Join_RejectsClosedAndFull(t *testing.T) {
	closed := openTrip(1, 0, 10)
	closed.Status = domain.TripCancelled

	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(closed, nil).Once()
	trips.On("GetByID", mock.Anything, int64(2)).Return(openTrip(2, 10, 10), nil).Once()

	svc, _, _ := newTestService(trips)
	caller := Caller{ID: 5, Authenticated: true}

	_, err := svc.Join(context.Background(), caller, 1, JoinRequest{})
	assert.ErrorIs(t, err, ErrTripNotOpen)

	_, err = svc.Join(context.Background(), caller, 2, JoinRequest{})
	assert.ErrorIs(t, err, ErrTripFull)
}

func TestService_Join_RejectsDuplicate(t *testing.T) {
	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(openTrip(1, 2, 10), nil)
	trips.On("FindParticipant", mock.Anything, int64(1), mock.Anything, "").
		Return(&domain.TripParticipant{ID: 9, TripID: 1}, nil)

	svc, _, _ := newTestService(trips)

	_, err := svc.Join(context.Background(), Caller{ID: 5, Authenticated: true}, 1, JoinRequest{})

	assert.ErrorIs(t, err, ErrAlreadyJoined)
	trips.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Join_LastSeatRaceLoses(t *testing.T) {
	// Pre-checks pass on a stale read; the transactional claim is the
	// one that decides.
	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(openTrip(1, 9, 10), nil)
	trips.On("FindParticipant", mock.Anything, int64(1), mock.Anything, "").
		Return(nil, gorm.ErrRecordNotFound)
	trips.On("Join", mock.Anything, int64(1), mock.Anything).Return(repository.ErrSeatUnavailable)

	svc, writer, mail := newTestService(trips)

	_, err := svc.Join(context.Background(), Caller{ID: 5, Authenticated: true}, 1, JoinRequest{})

	assert.ErrorIs(t, err, ErrTripFull)
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "SendTravelBuddyNotification", mock.Anything, mock.Anything)
}

func TestService_Join_AdvisoryPipelineRuns(t *testing.T) {
	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(openTrip(1, 2, 10), nil)
	trips.On("FindParticipant", mock.Anything, int64(1), mock.Anything, "").
		Return(nil, gorm.ErrRecordNotFound)
	trips.On("Join", mock.Anything, int64(1), mock.AnythingOfType("*domain.TripParticipant")).Return(nil)

	svc, writer, mail := newTestService(trips)
	mail.On("SendTravelBuddyNotification", mock.Anything, mock.Anything).Return(nil)
	writer.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Request) bool {
		return r.RequestType == domain.RequestTravelBuddy
	})).Return(nil)

	_, err := svc.Join(context.Background(), Caller{ID: 5, Authenticated: true}, 1, JoinRequest{})

	assert.NoError(t, err)
	writer.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestService_Leave_ReleasesSeat(t *testing.T) {
	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(openTrip(1, 3, 10), nil)
	trips.On("FindParticipant", mock.Anything, int64(1), mock.Anything, "").
		Return(&domain.TripParticipant{ID: 9, TripID: 1}, nil)
	trips.On("Leave", mock.Anything, int64(1), int64(9)).Return(nil)

	svc, _, _ := newTestService(trips)

	_, err := svc.Leave(context.Background(), Caller{ID: 5, Authenticated: true}, 1, LeaveRequest{})

	assert.NoError(t, err)
	trips.AssertExpectations(t)
}

func TestService_Leave_NotRegistered(t *testing.T) {
	trips := new(MockTripRepository)
	trips.On("GetByID", mock.Anything, int64(1)).Return(openTrip(1, 3, 10), nil)
	trips.On("FindParticipant", mock.Anything, int64(1), mock.Anything, "").
		Return(nil, gorm.ErrRecordNotFound)

	svc, _, _ := newTestService(trips)

	_, err := svc.Leave(context.Background(), Caller{ID: 5, Authenticated: true}, 1, LeaveRequest{})

	assert.ErrorIs(t, err, ErrNotParticipating)
}
