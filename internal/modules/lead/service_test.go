package lead

import (
	"context"
	"errors"
	"testing"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRequestWriter struct {
	mock.Mock
}

func (m *MockRequestWriter) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	if req != nil {
		req.ID = 77
	}
	return args.Error(0)
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

func TestService_SubmitLead_AllStepsSucceed(t *testing.T) {
	writer := new(MockRequestWriter)
	writer.On("Create", mock.Anything, mock.AnythingOfType("*domain.Request")).Return(nil)
	mail := new(MockMailer)
	mail.On("SendLeadNotification", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(writer, mail)

	result := svc.SubmitLead(context.Background(), nil, LeadRequest{
		Name:  "Jordan",
		Phone: "+123456789",
	})

	assert.True(t, result.EmailSent)
	assert.NotNil(t, result.RequestID)
	assert.Equal(t, int64(77), *result.RequestID)
}

func TestService_SubmitLead_EmailFailureIsAdvisory(t *testing.T) {
	writer := new(MockRequestWriter)
	writer.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail := new(MockMailer)
	mail.On("SendLeadNotification", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(writer, mail)

	result := svc.SubmitLead(context.Background(), nil, LeadRequest{Name: "Jordan", Phone: "+1"})

	assert.False(t, result.EmailSent)
	assert.NotNil(t, result.RequestID)
}

func TestService_SubmitLead_AuditFailureIsAdvisory(t *testing.T) {
	writer := new(MockRequestWriter)
	writer.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	mail := new(MockMailer)
	mail.On("SendLeadNotification", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(writer, mail)

	result := svc.SubmitLead(context.Background(), nil, LeadRequest{Name: "Jordan", Phone: "+1"})

	assert.True(t, result.EmailSent)
	assert.Nil(t, result.RequestID)
}

func TestDeriveRequestType(t *testing.T) {
	assert.Equal(t, domain.RequestPackage, deriveRequestType(LeadRequest{PackageCode: "BT2-GRE-01"}))
	assert.Equal(t, domain.RequestPassport, deriveRequestType(LeadRequest{Service: "Passport renewal"}))
	assert.Equal(t, domain.RequestVisa, deriveRequestType(LeadRequest{Service: "Schengen visa help"}))
	assert.Equal(t, domain.RequestBooking, deriveRequestType(LeadRequest{Service: "Honeymoon"}))
	// Package code outranks service keywords.
	assert.Equal(t, domain.RequestPackage, deriveRequestType(LeadRequest{PackageCode: "X", Service: "visa"}))
}

func TestService_SubmitTravelPeriod_TitleCarriesRoute(t *testing.T) {
	writer := new(MockRequestWriter)
	writer.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Request) bool {
		return r.RequestType == domain.RequestTravelPlan && r.Title == "Travel Plan: DOH -> LHR"
	})).Return(nil)
	mail := new(MockMailer)
	mail.On("SendTravelPeriodNotification", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(writer, mail)

	result := svc.SubmitTravelPeriod(context.Background(), nil, TravelPeriodRequest{
		StartDate:        "2026-10-01",
		EndDate:          "2026-10-14",
		TripType:         "return",
		DepartureAirport: "DOH",
		ArrivalAirport:   "LHR",
	})

	assert.True(t, result.EmailSent)
	writer.AssertExpectations(t)
}
