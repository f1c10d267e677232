package interfaces

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")
)
