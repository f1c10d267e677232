package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Drivetrain string

const (
	DrivetrainAWD Drivetrain = "awd"
	DrivetrainRWD Drivetrain = "rwd"
	DrivetrainFWD Drivetrain = "fwd"
)

// VehicleColor is one configurable exterior color with its swatch and gallery image.
type VehicleColor struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Hex   string `json:"hex" bson:"hex"`
	Image string `json:"image" bson:"image"`
}

// VehicleSpecs carries the spec sheet as authored in the CMS. Values are unit-bearing
// display strings ("400 miles", "75 kWh"); numeric filtering parses the leading integer.
type VehicleSpecs struct {
	Range        string `json:"range" bson:"range"`
	Acceleration string `json:"acceleration" bson:"acceleration"`
	TopSpeed     string `json:"top_speed" bson:"top_speed"`
	Power        string `json:"power" bson:"power"`
	Battery      string `json:"battery" bson:"battery"`
	Seating      string `json:"seating" bson:"seating"`
}

// TestDriveWindow is the configured availability window for test-drive bookings.
// Hours are on a 24h clock, IntervalMinutes is the slot step.
type TestDriveWindow struct {
	StartDate       time.Time `json:"start_date" bson:"start_date"`
	EndDate         time.Time `json:"end_date" bson:"end_date"`
	StartHour       int       `json:"start_hour" bson:"start_hour"`
	EndHour         int       `json:"end_hour" bson:"end_hour"`
	IntervalMinutes int       `json:"interval_minutes" bson:"interval_minutes"`
}

type Vehicle struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Slug               string             `json:"slug" bson:"slug" validate:"required"`
	Make               string             `json:"make" bson:"make" validate:"required"`
	Model              string             `json:"model" bson:"model" validate:"required"`
	Year               int                `json:"year" bson:"year" validate:"required"`
	Price              float64            `json:"price" bson:"price"`
	Description        string             `json:"description" bson:"description"`
	DescriptionAr      string             `json:"description_ar" bson:"description_ar"`
	ShortDescription   string             `json:"short_description" bson:"short_description"`
	ShortDescriptionAr string             `json:"short_description_ar" bson:"short_description_ar"`
	Colors             []VehicleColor     `json:"colors" bson:"colors"`
	Specs              VehicleSpecs       `json:"specs" bson:"specs"`
	Images             []string           `json:"images" bson:"images"`
	MainImage          string             `json:"main_image" bson:"main_image"`
	Featured           bool               `json:"featured" bson:"featured"`
	Drivetrain         Drivetrain         `json:"drivetrain" bson:"drivetrain"`
	TestDrive          *TestDriveWindow   `json:"test_drive,omitempty" bson:"test_drive,omitempty"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// Label is the display identity used on booking records, e.g. "2025 Stellar EX".
func (v *Vehicle) Label() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
