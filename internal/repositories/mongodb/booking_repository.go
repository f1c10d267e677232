package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
)

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	if booking.Status == "" {
		booking.Status = models.BookingStatusConfirmed
	}

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     models.BookingStatusCancelled,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}

// ListTimeLabels returns the time labels already reserved for one vehicle and
// day. Cancelled bookings release their slot.
func (r *bookingRepository) ListTimeLabels(ctx context.Context, vehicleLabel, dateLabel string) ([]string, error) {
	filter := bson.M{
		"vehicle_label": vehicleLabel,
		"date":          dateLabel,
		"status":        models.BookingStatusConfirmed,
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"time": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list booked times: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode booked times: %w", err)
	}

	times := make([]string, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.Time)
	}
	return times, nil
}

func (r *bookingRepository) SlotTaken(ctx context.Context, vehicleLabel, dateLabel, timeLabel string) (bool, error) {
	filter := bson.M{
		"vehicle_label": vehicleLabel,
		"date":          dateLabel,
		"time":          timeLabel,
		"status":        models.BookingStatusConfirmed,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}
	return count > 0, nil
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by email: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
