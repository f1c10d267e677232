package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"voltdrive/internal/config"
	"voltdrive/internal/models"
	"voltdrive/pkg/logger"
)

// NotificationService delivers booking confirmations and inquiry alerts.
// Every send is best-effort from the caller's perspective: a failed email or
// SMS never rolls back the record it announces.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking *models.Booking) error
	NotifyOperatorBooking(ctx context.Context, booking *models.Booking) error
	NotifyOperatorInquiry(ctx context.Context, inquiry *models.Inquiry) error
}

type notificationService struct {
	smtp          *config.SMTPConfig
	operatorEmail string
	smsEnabled    bool
	twilioClient  *twilio.RestClient
	twilioFrom    string
	logger        *logger.Logger
}

func NewNotificationService(cfg *config.Config, log *logger.Logger) NotificationService {
	s := &notificationService{
		smtp:          cfg.SMTP,
		operatorEmail: cfg.Booking.OperatorEmail,
		smsEnabled:    cfg.SMS.Enabled,
		twilioFrom:    cfg.SMS.Twilio.FromNumber,
		logger:        log,
	}

	if cfg.SMS.Enabled {
		s.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.SMS.Twilio.AccountSID,
			Password: cfg.SMS.Twilio.AuthToken,
		})
	}

	return s
}

func (s *notificationService) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	subject := fmt.Sprintf("Your test drive is confirmed: %s", booking.VehicleLabel)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour test drive is booked:\n\nVehicle: %s\nDate: %s\nTime: %s\nReference: %s\n\nSee you at the showroom!",
		booking.FirstName, booking.VehicleLabel, booking.DateLabel, booking.TimeLabel, booking.Reference,
	)

	if err := s.sendEmail(booking.Email, subject, body); err != nil {
		return fmt.Errorf("confirmation email: %w", err)
	}

	if s.smsEnabled && booking.Phone != "" {
		sms := fmt.Sprintf("VoltDrive: test drive confirmed for %s on %s at %s (ref %s)",
			booking.VehicleLabel, booking.DateLabel, booking.TimeLabel, booking.Reference)
		if err := s.sendSMS(booking.Phone, sms); err != nil {
			// The email went out; an SMS failure is only worth a log line.
			s.logger.WithBooking(booking.Reference).WithError(err).Warn("Confirmation SMS failed")
		}
	}

	return nil
}

func (s *notificationService) NotifyOperatorBooking(ctx context.Context, booking *models.Booking) error {
	subject := fmt.Sprintf("New test drive booking: %s", booking.VehicleLabel)
	body := fmt.Sprintf(
		"Customer: %s %s\nEmail: %s\nPhone: %s\nVehicle: %s\nDate: %s\nTime: %s\nComments: %s\nAttachment: %s\nReference: %s",
		booking.FirstName, booking.LastName, booking.Email, booking.Phone,
		booking.VehicleLabel, booking.DateLabel, booking.TimeLabel,
		booking.Comments, booking.AttachmentURL, booking.Reference,
	)
	return s.sendEmail(s.operatorEmail, subject, body)
}

func (s *notificationService) NotifyOperatorInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	subject := fmt.Sprintf("New %s inquiry from %s", inquiry.Type, inquiry.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message,
	)
	return s.sendEmail(s.operatorEmail, subject, body)
}

func (s *notificationService) sendEmail(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.smtp.Host, s.smtp.Port)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.smtp.FromName, s.smtp.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.smtp.Username != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}

	if err := smtp.SendMail(addr, auth, s.smtp.FromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (s *notificationService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.twilioFrom)
	params.SetBody(body)

	_, err := s.twilioClient.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
