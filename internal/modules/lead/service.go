package lead

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/pkg/mailer"
)

// Service runs the advisory submission pipeline: notify the operator
// inbox, record an audit row, respond. Steps 1 and 2 may fail without
// failing the submission; the response flags report what happened.
type Service struct {
	requests RequestWriter
	mail     mailer.Mailer
}

func NewService(requests RequestWriter, mail mailer.Mailer) *Service {
	return &Service{requests: requests, mail: mail}
}

// deriveRequestType classifies a lead from its fields: an explicit
// package code wins, then passport/visa keywords in the service text,
// everything else is a plain booking inquiry.
func deriveRequestType(req LeadRequest) domain.RequestType {
	if req.PackageCode != "" {
		return domain.RequestPackage
	}
	service := strings.ToLower(req.Service)
	if strings.Contains(service, "passport") {
		return domain.RequestPassport
	}
	if strings.Contains(service, "visa") {
		return domain.RequestVisa
	}
	return domain.RequestBooking
}

// SubmitLead handles a contact-form submission. userID is nil for
// guests.
func (s *Service) SubmitLead(ctx context.Context, userID *int64, req LeadRequest) SubmitResult {
	var result SubmitResult

	err := s.mail.SendLeadNotification(ctx, mailer.LeadNotification{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Service:     req.Service,
		Notes:       req.Notes,
		PackageCode: req.PackageCode,
	})
	if err != nil {
		log.Printf("lead: notification email failed: %v", err)
	} else {
		result.EmailSent = true
	}

	title := "Booking Inquiry"
	if req.PackageCode != "" {
		title = "Package Inquiry - " + req.PackageCode
	}

	data, _ := json.Marshal(req)
	audit := &domain.Request{
		UserID:      userID,
		RequestType: deriveRequestType(req),
		Title:       title,
		RequestData: data,
	}
	if err := s.requests.Create(ctx, audit); err != nil {
		log.Printf("lead: audit insert failed: %v", err)
	} else {
		result.RequestID = &audit.ID
	}

	return result
}

// SubmitTravelPeriod handles a flight-planning submission. The same
// advisory rules apply.
func (s *Service) SubmitTravelPeriod(ctx context.Context, userID *int64, req TravelPeriodRequest) SubmitResult {
	var result SubmitResult

	err := s.mail.SendTravelPeriodNotification(ctx, mailer.TravelPeriodNotification{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		TripType:         req.TripType,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
	})
	if err != nil {
		log.Printf("travel-period: notification email failed: %v", err)
	} else {
		result.EmailSent = true
	}

	data, _ := json.Marshal(req)
	audit := &domain.Request{
		UserID:      userID,
		RequestType: domain.RequestTravelPlan,
		Title:       "Travel Plan: " + req.DepartureAirport + " -> " + req.ArrivalAirport,
		RequestData: data,
	}
	if err := s.requests.Create(ctx, audit); err != nil {
		log.Printf("travel-period: audit insert failed: %v", err)
	} else {
		result.RequestID = &audit.ID
	}

	return result
}
