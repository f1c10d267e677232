package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"voltdrive/internal/config"
	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/internal/scheduling"
	"voltdrive/pkg/logger"
	"voltdrive/pkg/storage"
)

var (
	// ErrSlotConflict means the requested time is already reserved. Callers
	// surface it by disabling the slot, never by booking through it.
	ErrSlotConflict = errors.New("time slot already booked")
	// ErrInvalidSlot means the date or time is outside the vehicle's window.
	ErrInvalidSlot = errors.New("date or time outside the availability window")
)

// SlotStatus is one bookable time of a day and whether it is already taken.
type SlotStatus struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// DaySchedule is the full slot list for one vehicle and date.
type DaySchedule struct {
	Date  string       `json:"date"`
	Slots []SlotStatus `json:"slots"`
}

// AttachmentUpload is an optional customer file submitted with a booking.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// BookingRequest carries a validated booking submission into the service.
type BookingRequest struct {
	VehicleSlug string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateLabel   string
	TimeLabel   string
	Comments    string
	Locale      string
	Attachment  *AttachmentUpload
}

type BookingService interface {
	AvailableDates(ctx context.Context, slug string) ([]string, error)
	DaySchedule(ctx context.Context, slug, dateLabel string) (*DaySchedule, error)
	CreateBooking(ctx context.Context, request *BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, reference string) (*models.Booking, error)
	CancelBooking(ctx context.Context, reference string) error
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
}

type bookingService struct {
	vehicleRepo interfaces.VehicleRepository
	bookingRepo interfaces.BookingRepository
	store       storage.Storage
	notifier    NotificationService
	cfg         *config.BookingConfig
	logger      *logger.Logger

	// Slots confirmed by this process, applied on top of repository reads so
	// a just-created booking blocks its slot before any refetch.
	mu         sync.Mutex
	optimistic scheduling.BookedSlots

	now func() time.Time
}

func NewBookingService(
	vehicleRepo interfaces.VehicleRepository,
	bookingRepo interfaces.BookingRepository,
	store storage.Storage,
	notifier NotificationService,
	cfg *config.BookingConfig,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		store:       store,
		notifier:    notifier,
		cfg:         cfg,
		logger:      log,
		optimistic:  scheduling.BookedSlots{},
		now:         time.Now,
	}
}

// window returns the vehicle's configured availability, or the showroom
// default window anchored at today when the CMS entry has none.
func (s *bookingService) window(vehicle *models.Vehicle) models.TestDriveWindow {
	if vehicle.TestDrive != nil {
		return *vehicle.TestDrive
	}
	today := s.now()
	return models.TestDriveWindow{
		StartDate:       today,
		EndDate:         today.AddDate(0, 0, s.cfg.WindowDays),
		StartHour:       s.cfg.StartHour,
		EndHour:         s.cfg.EndHour,
		IntervalMinutes: s.cfg.IntervalMinutes,
	}
}

func (s *bookingService) AvailableDates(ctx context.Context, slug string) ([]string, error) {
	vehicle, err := s.vehicleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	dates := scheduling.AvailableDates(s.window(vehicle), s.now())
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = scheduling.DateLabel(d)
	}
	return labels, nil
}

func (s *bookingService) DaySchedule(ctx context.Context, slug, dateLabel string) (*DaySchedule, error) {
	vehicle, err := s.vehicleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	times := scheduling.TimeSlots(s.window(vehicle))

	reserved, err := s.bookingRepo.ListTimeLabels(ctx, vehicle.Label(), dateLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}

	booked := scheduling.BookedSlots{}
	booked.Replace(vehicle.Label(), dateLabel, reserved)

	s.mu.Lock()
	for _, t := range s.optimistic[vehicle.Label()+"|"+dateLabel] {
		booked.Mark(vehicle.Label(), dateLabel, t)
	}
	s.mu.Unlock()

	schedule := &DaySchedule{Date: dateLabel, Slots: make([]SlotStatus, len(times))}
	for i, t := range times {
		schedule.Slots[i] = SlotStatus{
			Time:   t,
			Booked: booked.IsBooked(vehicle.Label(), dateLabel, t),
		}
	}
	return schedule, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, request *BookingRequest) (*models.Booking, error) {
	vehicle, err := s.vehicleRepo.GetBySlug(ctx, request.VehicleSlug)
	if err != nil {
		return nil, err
	}

	window := s.window(vehicle)
	if !s.slotInWindow(window, request.DateLabel, request.TimeLabel) {
		return nil, ErrInvalidSlot
	}

	taken, err := s.bookingRepo.SlotTaken(ctx, vehicle.Label(), request.DateLabel, request.TimeLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if taken || s.isOptimisticallyTaken(vehicle.Label(), request.DateLabel, request.TimeLabel) {
		return nil, ErrSlotConflict
	}

	booking := &models.Booking{
		Reference:    uuid.NewString(),
		VehicleID:    vehicle.ID,
		VehicleLabel: vehicle.Label(),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Phone:        request.Phone,
		DateLabel:    request.DateLabel,
		TimeLabel:    request.TimeLabel,
		Comments:     request.Comments,
		Status:       models.BookingStatusConfirmed,
		Locale:       request.Locale,
	}

	// Attachment upload happens before the record is written: a storage
	// failure must not leave a booking without its promised file.
	if request.Attachment != nil {
		url, err := s.uploadAttachment(ctx, booking.Reference, request.Attachment)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		booking.AttachmentURL = url
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// No optimistic update on failure: the slot stays selectable.
		return nil, err
	}

	s.mu.Lock()
	s.optimistic.Mark(vehicle.Label(), request.DateLabel, request.TimeLabel)
	s.mu.Unlock()

	s.logger.LogBookingEvent(booking.Reference, "created", map[string]interface{}{
		"vehicle": vehicle.Slug,
		"date":    booking.DateLabel,
		"time":    booking.TimeLabel,
	})

	// Notifications are best-effort: the booking stands even if delivery fails.
	if err := s.notifier.SendBookingConfirmation(ctx, booking); err != nil {
		s.logger.WithBooking(booking.Reference).WithError(err).Warn("Customer confirmation failed")
	}
	if err := s.notifier.NotifyOperatorBooking(ctx, booking); err != nil {
		s.logger.WithBooking(booking.Reference).WithError(err).Warn("Operator notification failed")
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, reference string) (*models.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

// CancelBooking releases the slot so it reads as free again immediately.
func (s *bookingService) CancelBooking(ctx context.Context, reference string) error {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		return err
	}

	s.mu.Lock()
	s.optimistic.Unmark(booking.VehicleLabel, booking.DateLabel, booking.TimeLabel)
	s.mu.Unlock()

	s.logger.LogBookingEvent(reference, "cancelled", map[string]interface{}{
		"vehicle": booking.VehicleLabel,
		"date":    booking.DateLabel,
		"time":    booking.TimeLabel,
	})
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return s.bookingRepo.ListByEmail(ctx, email)
}

func (s *bookingService) slotInWindow(window models.TestDriveWindow, dateLabel, timeLabel string) bool {
	dateOK := false
	for _, d := range scheduling.AvailableDates(window, s.now()) {
		if scheduling.DateLabel(d) == dateLabel {
			dateOK = true
			break
		}
	}
	if !dateOK {
		return false
	}
	for _, t := range scheduling.TimeSlots(window) {
		if t == timeLabel {
			return true
		}
	}
	return false
}

func (s *bookingService) isOptimisticallyTaken(vehicleLabel, dateLabel, timeLabel string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optimistic.IsBooked(vehicleLabel, dateLabel, timeLabel)
}

func (s *bookingService) uploadAttachment(ctx context.Context, reference string, attachment *AttachmentUpload) (string, error) {
	key := fmt.Sprintf("bookings/%s/%s", reference, path.Base(attachment.FileName))
	resp, err := s.store.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      attachment.Reader,
		ContentType: attachment.ContentType,
		Size:        attachment.Size,
	})
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
