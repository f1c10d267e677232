package services

import (
	"context"

	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/pkg/logger"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	ListInquiries(ctx context.Context, inquiryType models.InquiryType, page, pageSize int) ([]models.Inquiry, int64, error)
}

type inquiryService struct {
	inquiryRepo interfaces.InquiryRepository
	notifier    NotificationService
	logger      *logger.Logger
}

func NewInquiryService(inquiryRepo interfaces.InquiryRepository, notifier NotificationService, log *logger.Logger) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		logger:      log,
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return err
	}

	if err := s.notifier.NotifyOperatorInquiry(ctx, inquiry); err != nil {
		s.logger.WithError(err).Warn("Operator inquiry notification failed")
	}
	return nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, inquiryType models.InquiryType, page, pageSize int) ([]models.Inquiry, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return s.inquiryRepo.List(ctx, inquiryType, pageSize, offset)
}
