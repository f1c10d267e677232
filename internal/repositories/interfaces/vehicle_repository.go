package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/models"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Catalog snapshot in CMS order. The filter engine treats the returned
	// slice as a read-only snapshot per invocation.
	List(ctx context.Context) ([]models.Vehicle, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Vehicle, error)
}
