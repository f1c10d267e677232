package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"voltdrive/internal/scheduling"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date_label", validateDateLabel)
	validate.RegisterValidation("time_label", validateTimeLabel)
	validate.RegisterValidation("locale_code", validateLocaleCode)
	validate.RegisterValidation("inquiry_type", validateInquiryType)
}

// Common validation errors
var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidDateLabel   = errors.New("invalid date label")
	ErrInvalidTimeLabel   = errors.New("invalid time label")
	ErrInvalidLocale      = errors.New("unsupported locale")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Fields flattens the errors into the field→message map the response
// envelope expects.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "phone_number":
		return "Invalid phone number format"
	case "date_label":
		return "Invalid date, expected e.g. \"Mon, Jan 6\""
	case "time_label":
		return "Invalid time, expected e.g. \"9:00 AM\""
	case "locale_code":
		return "Unsupported locale"
	case "inquiry_type":
		return "Inquiry type must be quote or contact"
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phoneRegex.MatchString(phone)
}

func validateDateLabel(fl validator.FieldLevel) bool {
	_, err := time.Parse(scheduling.DateLabelLayout, fl.Field().String())
	return err == nil
}

// Slot labels render minutes without zero padding except on the hour, so the
// pattern accepts "9:00 AM" as well as "10:5 AM".
var timeLabelRegex = regexp.MustCompile(`^(1[0-2]|[1-9]):[0-5]?[0-9] (AM|PM)$`)

func validateTimeLabel(fl validator.FieldLevel) bool {
	return timeLabelRegex.MatchString(fl.Field().String())
}

func validateLocaleCode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "en", "ar":
		return true
	}
	return false
}

func validateInquiryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "quote", "contact":
		return true
	}
	return false
}
