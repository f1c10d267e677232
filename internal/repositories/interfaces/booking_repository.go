package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	Cancel(ctx context.Context, id primitive.ObjectID) error

	// Slot occupancy. Labels are the display strings bookings are stored with.
	ListTimeLabels(ctx context.Context, vehicleLabel, dateLabel string) ([]string, error)
	SlotTaken(ctx context.Context, vehicleLabel, dateLabel, timeLabel string) (bool, error)

	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
}
