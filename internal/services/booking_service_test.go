package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/config"
	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/pkg/logger"
	"voltdrive/pkg/storage"
)

type stubVehicleRepo struct {
	vehicle *models.Vehicle
}

func (s *stubVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error { return nil }

func (s *stubVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	return s.vehicle, nil
}

func (s *stubVehicleRepo) GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	if s.vehicle != nil && s.vehicle.Slug == slug {
		return s.vehicle, nil
	}
	return nil, interfaces.ErrVehicleNotFound
}

func (s *stubVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (s *stubVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func (s *stubVehicleRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	if s.vehicle == nil {
		return []models.Vehicle{}, nil
	}
	return []models.Vehicle{*s.vehicle}, nil
}

func (s *stubVehicleRepo) ListFeatured(ctx context.Context, limit int) ([]models.Vehicle, error) {
	return nil, nil
}

type stubBookingRepo struct {
	created   []*models.Booking
	reserved  map[string][]string // "vehicleLabel|dateLabel" -> time labels
	createErr error
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, booking)
	return nil
}

func (s *stubBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	for _, b := range s.created {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, interfaces.ErrBookingNotFound
}

func (s *stubBookingRepo) Cancel(ctx context.Context, id primitive.ObjectID) error { return nil }

func (s *stubBookingRepo) ListTimeLabels(ctx context.Context, vehicleLabel, dateLabel string) ([]string, error) {
	return s.reserved[vehicleLabel+"|"+dateLabel], nil
}

func (s *stubBookingRepo) SlotTaken(ctx context.Context, vehicleLabel, dateLabel, timeLabel string) (bool, error) {
	for _, t := range s.reserved[vehicleLabel+"|"+dateLabel] {
		if t == timeLabel {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

type stubStorage struct {
	uploads []string
	err     error
}

func (s *stubStorage) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.uploads = append(s.uploads, req.Key)
	return &storage.UploadResponse{Key: req.Key, URL: "https://cdn.example/" + req.Key, Size: req.Size}, nil
}

func (s *stubStorage) Delete(ctx context.Context, key string) error { return nil }

type stubNotifier struct {
	confirmations int
	operatorMails int
	inquiryMails  int
	err           error
}

func (s *stubNotifier) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	s.confirmations++
	return s.err
}

func (s *stubNotifier) NotifyOperatorBooking(ctx context.Context, booking *models.Booking) error {
	s.operatorMails++
	return s.err
}

func (s *stubNotifier) NotifyOperatorInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	s.inquiryMails++
	return s.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stdout"})
	require.NoError(t, err)
	return log
}

func testVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:    primitive.NewObjectID(),
		Slug:  "aurora-lr",
		Make:  "Aurora",
		Model: "LR",
		Year:  2025,
		TestDrive: &models.TestDriveWindow{
			StartDate:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			StartHour:       9,
			EndHour:         11,
			IntervalMinutes: 60,
		},
	}
}

func newTestBookingService(t *testing.T, vehicleRepo *stubVehicleRepo, bookingRepo *stubBookingRepo, store *stubStorage, notifier *stubNotifier) *bookingService {
	t.Helper()
	cfg := &config.BookingConfig{StartHour: 9, EndHour: 18, IntervalMinutes: 60, WindowDays: 14}
	svc := NewBookingService(vehicleRepo, bookingRepo, store, notifier, cfg, testLogger(t)).(*bookingService)
	svc.now = func() time.Time {
		return time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	}
	return svc
}

func validRequest() *BookingRequest {
	return &BookingRequest{
		VehicleSlug: "aurora-lr",
		FirstName:   "Layla",
		LastName:    "Hassan",
		Email:       "layla@example.com",
		Phone:       "+971501234567",
		DateLabel:   "Mon, Jan 6",
		TimeLabel:   "10:00 AM",
		Locale:      "en",
	}
}

func TestAvailableDatesUsesVehicleWindow(t *testing.T) {
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	dates, err := svc.AvailableDates(context.Background(), "aurora-lr")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mon, Jan 6", "Tue, Jan 7", "Wed, Jan 8"}, dates)
}

func TestAvailableDatesUnknownVehicle(t *testing.T) {
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	_, err := svc.AvailableDates(context.Background(), "missing")
	assert.ErrorIs(t, err, interfaces.ErrVehicleNotFound)
}

func TestAvailableDatesFallsBackToDefaultWindow(t *testing.T) {
	vehicle := testVehicle()
	vehicle.TestDrive = nil
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: vehicle}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	dates, err := svc.AvailableDates(context.Background(), "aurora-lr")
	require.NoError(t, err)
	require.Len(t, dates, 15) // today through today+14
	assert.Equal(t, "Mon, Jan 6", dates[0])
}

func TestDayScheduleFlagsReservedSlots(t *testing.T) {
	bookingRepo := &stubBookingRepo{reserved: map[string][]string{
		"2025 Aurora LR|Mon, Jan 6": {"10:00 AM"},
	}}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, &stubStorage{}, &stubNotifier{})

	schedule, err := svc.DaySchedule(context.Background(), "aurora-lr", "Mon, Jan 6")
	require.NoError(t, err)

	require.Len(t, schedule.Slots, 3)
	assert.Equal(t, SlotStatus{Time: "9:00 AM", Booked: false}, schedule.Slots[0])
	assert.Equal(t, SlotStatus{Time: "10:00 AM", Booked: true}, schedule.Slots[1])
	assert.Equal(t, SlotStatus{Time: "11:00 AM", Booked: false}, schedule.Slots[2])
}

func TestCreateBookingConfirmsAndNotifies(t *testing.T) {
	bookingRepo := &stubBookingRepo{}
	notifier := &stubNotifier{}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, &stubStorage{}, notifier)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, "2025 Aurora LR", booking.VehicleLabel)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Len(t, bookingRepo.created, 1)
	assert.Equal(t, 1, notifier.confirmations)
	assert.Equal(t, 1, notifier.operatorMails)
}

func TestCreateBookingBlocksReservedSlot(t *testing.T) {
	bookingRepo := &stubBookingRepo{reserved: map[string][]string{
		"2025 Aurora LR|Mon, Jan 6": {"10:00 AM"},
	}}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, &stubStorage{}, &stubNotifier{})

	_, err := svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, bookingRepo.created)
}

func TestCreateBookingBlocksRepeatOfOwnSlot(t *testing.T) {
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	// The repo stub forgets, but the optimistic map remembers.
	_, err = svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingRejectsSlotOutsideWindow(t *testing.T) {
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	request := validRequest()
	request.DateLabel = "Thu, Jan 9"
	_, err := svc.CreateBooking(context.Background(), request)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	request = validRequest()
	request.TimeLabel = "8:00 PM"
	_, err = svc.CreateBooking(context.Background(), request)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateBookingOptimisticSlotVisibleInSchedule(t *testing.T) {
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, &stubBookingRepo{}, &stubStorage{}, &stubNotifier{})

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	schedule, err := svc.DaySchedule(context.Background(), "aurora-lr", "Mon, Jan 6")
	require.NoError(t, err)
	assert.True(t, schedule.Slots[1].Booked, "10:00 AM should stay blocked after booking")
}

func TestCreateBookingUploadsAttachment(t *testing.T) {
	store := &stubStorage{}
	bookingRepo := &stubBookingRepo{}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, store, &stubNotifier{})

	request := validRequest()
	request.Attachment = &AttachmentUpload{
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Reader:      strings.NewReader("pdf bytes"),
	}

	booking, err := svc.CreateBooking(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.Contains(t, store.uploads[0], "license.pdf")
	assert.Equal(t, "https://cdn.example/"+store.uploads[0], booking.AttachmentURL)
}

func TestCreateBookingAbortsOnUploadFailure(t *testing.T) {
	store := &stubStorage{err: errors.New("bucket unavailable")}
	bookingRepo := &stubBookingRepo{}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, store, &stubNotifier{})

	request := validRequest()
	request.Attachment = &AttachmentUpload{
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Reader:      strings.NewReader("pdf bytes"),
	}

	_, err := svc.CreateBooking(context.Background(), request)
	require.Error(t, err)
	assert.Empty(t, bookingRepo.created, "a failed upload must not leave a booking behind")
}

func TestCreateBookingSurvivesNotificationFailure(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("smtp down")}
	bookingRepo := &stubBookingRepo{}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, &stubStorage{}, notifier)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Len(t, bookingRepo.created, 1)
}

func TestGetBookingByReference(t *testing.T) {
	bookingRepo := &stubBookingRepo{}
	svc := newTestBookingService(t, &stubVehicleRepo{vehicle: testVehicle()}, bookingRepo, &stubStorage{}, &stubNotifier{})

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	found, err := svc.GetBooking(context.Background(), created.Reference)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, found.Reference)

	_, err = svc.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, interfaces.ErrBookingNotFound)
}
