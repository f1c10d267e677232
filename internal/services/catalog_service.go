package services

import (
	"context"

	"voltdrive/internal/inventory"
	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/pkg/logger"
)

// ListParams is one catalog query: narrowing filters, a sort, a free-text
// search and a page of the result.
type ListParams struct {
	Filters  inventory.Filters
	Sort     inventory.SortKey
	Query    string
	Page     int
	PageSize int
}

type CatalogService interface {
	ListVehicles(ctx context.Context, params ListParams) ([]models.Vehicle, int64, error)
	GetVehicle(ctx context.Context, slug string) (*models.Vehicle, error)
	FeaturedVehicles(ctx context.Context, limit int) ([]models.Vehicle, error)
	FilterMetadata(ctx context.Context) (*inventory.Metadata, error)
}

type catalogService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewCatalogService(vehicleRepo interfaces.VehicleRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		vehicleRepo: vehicleRepo,
		logger:      log,
	}
}

// ListVehicles applies the inventory engine to the catalog snapshot and pages
// the result. The returned total counts the filtered set, not the page.
func (s *catalogService) ListVehicles(ctx context.Context, params ListParams) ([]models.Vehicle, int64, error) {
	snapshot, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := inventory.Apply(snapshot, params.Filters, params.Sort, params.Query)
	total := int64(len(filtered))

	if params.PageSize <= 0 {
		return filtered, total, nil
	}

	start := (params.Page - 1) * params.PageSize
	if start < 0 {
		start = 0
	}
	if start >= len(filtered) {
		return []models.Vehicle{}, total, nil
	}
	end := start + params.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (s *catalogService) GetVehicle(ctx context.Context, slug string) (*models.Vehicle, error) {
	return s.vehicleRepo.GetBySlug(ctx, slug)
}

func (s *catalogService) FeaturedVehicles(ctx context.Context, limit int) ([]models.Vehicle, error) {
	return s.vehicleRepo.ListFeatured(ctx, limit)
}

func (s *catalogService) FilterMetadata(ctx context.Context) (*inventory.Metadata, error) {
	snapshot, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	meta := inventory.CollectMetadata(snapshot)
	return &meta, nil
}
