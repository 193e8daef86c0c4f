package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"bt2horizon/internal/config"
)

// ErrNotConfigured is returned when SMTP settings are absent. Callers
// on the lead pipelines treat it like any other send failure: logged,
// reported as emailSent=false, never fatal.
var ErrNotConfigured = errors.New("mailer: not configured")

type LeadNotification struct {
	Name        string
	Phone       string
	Email       string
	Service     string
	Notes       string
	PackageCode string
}

type TravelPeriodNotification struct {
	StartDate        string
	EndDate          string
	TripType         string
	DepartureAirport string
	ArrivalAirport   string
}

type TravelBuddyNotification struct {
	TripTitle   string
	Destination string
	Country     string
	StartDate   string
	EndDate     string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	Notes       string
}

// Mailer sends operator notifications for incoming submissions.
type Mailer interface {
	SendLeadNotification(ctx context.Context, n LeadNotification) error
	SendTravelPeriodNotification(ctx context.Context, n TravelPeriodNotification) error
	SendTravelBuddyNotification(ctx context.Context, n TravelBuddyNotification) error
}

// SMTP delivers notifications to the operator inbox over net/smtp.
type SMTP struct {
	cfg config.SMTPConfig
}

func NewSMTP(cfg config.SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (m *SMTP) configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *SMTP) send(subject, body string) error {
	if !m.configured() {
		return ErrNotConfigured
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	to := m.cfg.NotifyTo
	if to == "" {
		to = m.cfg.Username
	}

	msg := strings.Join([]string{
		"From: BT2 Horizon <" + from + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}

func (m *SMTP) SendLeadNotification(ctx context.Context, n LeadNotification) error {
	subject := "New Booking Inquiry"
	if n.PackageCode != "" {
		subject += " - " + n.PackageCode
	}

	var b strings.Builder
	if n.PackageCode != "" {
		fmt.Fprintf(&b, "Package: %s\n", n.PackageCode)
	}
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\n", n.Name, n.Phone)
	if n.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", n.Email)
	}
	service := n.Service
	if service == "" {
		service = "Not specified"
	}
	fmt.Fprintf(&b, "Service: %s\n", service)
	if n.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", n.Notes)
	}

	return m.send(subject, b.String())
}

func (m *SMTP) SendTravelPeriodNotification(ctx context.Context, n TravelPeriodNotification) error {
	subject := fmt.Sprintf("New Travel Plan: %s -> %s", n.DepartureAirport, n.ArrivalAirport)

	var b strings.Builder
	fmt.Fprintf(&b, "Route: %s -> %s\n", n.DepartureAirport, n.ArrivalAirport)
	fmt.Fprintf(&b, "Trip type: %s\n", n.TripType)
	fmt.Fprintf(&b, "Travel period: %s to %s\n", n.StartDate, n.EndDate)

	return m.send(subject, b.String())
}

func (m *SMTP) SendTravelBuddyNotification(ctx context.Context, n TravelBuddyNotification) error {
	subject := "New Travel Buddy Request - " + n.TripTitle

	var b strings.Builder
	fmt.Fprintf(&b, "Trip: %s (%s, %s)\n", n.TripTitle, n.Destination, n.Country)
	fmt.Fprintf(&b, "Dates: %s to %s\n", n.StartDate, n.EndDate)
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", n.GuestName, n.GuestEmail, n.GuestPhone)
	if n.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", n.Notes)
	}

	return m.send(subject, b.String())
}
