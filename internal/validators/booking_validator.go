package validators

// BookingForm is the multipart form submitted by the test drive wizard. The
// file part is handled separately by the handler.
type BookingForm struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=100"`
	LastName  string `form:"last_name" validate:"required,min=1,max=100"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required,phone_number"`
	Date      string `form:"date" validate:"required,date_label"`
	Time      string `form:"time" validate:"required,time_label"`
	Comments  string `form:"comments" validate:"max=2000"`
}

func ValidateBookingForm(form *BookingForm) ValidationErrors {
	return ValidateStruct(form)
}
