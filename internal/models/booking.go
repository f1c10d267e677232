package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed test-drive reservation. DateLabel and TimeLabel are stored
// exactly as presented to the customer ("Mon, Jan 6", "10:00 AM") because slot conflict
// checks compare against these labels.
type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Reference     string             `json:"reference" bson:"reference"`
	VehicleID     primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	VehicleLabel  string             `json:"vehicle_label" bson:"vehicle_label"`
	FirstName     string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName      string             `json:"last_name" bson:"last_name" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	Phone         string             `json:"phone" bson:"phone" validate:"required"`
	DateLabel     string             `json:"date" bson:"date" validate:"required"`
	TimeLabel     string             `json:"time" bson:"time" validate:"required"`
	Comments      string             `json:"comments" bson:"comments"`
	AttachmentURL string             `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	Status        BookingStatus      `json:"status" bson:"status" default:"confirmed"`
	Locale        string             `json:"locale" bson:"locale" default:"en"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
