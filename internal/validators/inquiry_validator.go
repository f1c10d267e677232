package validators

type InquiryForm struct {
	Type      string `json:"type" validate:"required,inquiry_type"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone_number"`
	VehicleID string `json:"vehicle_id" validate:"omitempty,len=24,hexadecimal"`
	Message   string `json:"message" validate:"required,min=1,max=5000"`
}

func ValidateInquiryForm(form *InquiryForm) ValidationErrors {
	return ValidateStruct(form)
}
