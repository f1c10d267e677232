package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryType string

const (
	InquiryTypeQuote   InquiryType = "quote"
	InquiryTypeContact InquiryType = "contact"
)

// Inquiry is a quote request or general contact message from the website forms.
type Inquiry struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Type      InquiryType         `json:"type" bson:"type" validate:"required,oneof=quote contact"`
	Name      string              `json:"name" bson:"name" validate:"required"`
	Email     string              `json:"email" bson:"email" validate:"required,email"`
	Phone     string              `json:"phone" bson:"phone"`
	VehicleID *primitive.ObjectID `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	Message   string              `json:"message" bson:"message" validate:"required"`
	Locale    string              `json:"locale" bson:"locale" default:"en"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
}
