package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() BookingForm {
	return BookingForm{
		FirstName: "Layla",
		LastName:  "Hassan",
		Email:     "layla@example.com",
		Phone:     "+971 50 123 4567",
		Date:      "Mon, Jan 6",
		Time:      "9:00 AM",
	}
}

func TestValidateBookingFormAccepts(t *testing.T) {
	form := validForm()
	assert.Empty(t, ValidateBookingForm(&form))

	// Minutes are rendered unpadded except on the hour.
	form.Time = "10:5 AM"
	assert.Empty(t, ValidateBookingForm(&form))
}

func TestValidateBookingFormRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingForm)
		field  string
	}{
		{"missing first name", func(f *BookingForm) { f.FirstName = "" }, "FirstName"},
		{"bad email", func(f *BookingForm) { f.Email = "not-an-email" }, "Email"},
		{"bad phone", func(f *BookingForm) { f.Phone = "call me" }, "Phone"},
		{"bad date", func(f *BookingForm) { f.Date = "January 6th" }, "Date"},
		{"24h time", func(f *BookingForm) { f.Time = "14:00" }, "Time"},
		{"hour 13", func(f *BookingForm) { f.Time = "13:00 PM" }, "Time"},
		{"minute 60", func(f *BookingForm) { f.Time = "9:60 AM" }, "Time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			errs := ValidateBookingForm(&form)
			assert.Contains(t, errs.Fields(), tt.field)
		})
	}
}

func TestValidateInquiryForm(t *testing.T) {
	form := InquiryForm{
		Type:    "quote",
		Name:    "Omar",
		Email:   "omar@example.com",
		Message: "Interested in the Aurora LR",
	}
	assert.Empty(t, ValidateInquiryForm(&form))

	form.Type = "complaint"
	errs := ValidateInquiryForm(&form)
	assert.Contains(t, errs.Fields(), "Type")
}
