package interfaces

import (
	"context"

	"voltdrive/internal/models"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context, inquiryType models.InquiryType, limit, offset int) ([]models.Inquiry, int64, error)
}
