package utils

// Application Constants
const (
	AppName    = "VoltDrive"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "AED"
	DefaultTimeZone = "Asia/Dubai"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Catalog query parameters use "all" to mean unconstrained.
	FilterAll = "all"

	// File Upload
	MaxAttachmentSize = 10 * 1024 * 1024 // 10MB
)

// Response Status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
)

// Allowed attachment content types for booking uploads.
var AllowedAttachmentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}
