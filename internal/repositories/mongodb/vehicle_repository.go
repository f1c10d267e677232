package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voltdrive/internal/models"
	"voltdrive/internal/repositories/interfaces"
	"voltdrive/pkg/cache"
	"voltdrive/pkg/logger"
)

const catalogCacheKey = "catalog:vehicles"

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
	cacheTTL   time.Duration
	logger     *logger.Logger
}

func NewVehicleRepository(db *mongo.Database, cacheService CacheService, cacheTTL time.Duration, log *logger.Logger) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cacheService,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.invalidateCatalogCache(ctx)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by slug: %w", err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	r.invalidateCatalogCache(ctx)
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	r.invalidateCatalogCache(ctx)
	return nil
}

// List returns the full catalog in CMS order, cache-aside. The slice is a
// fresh snapshot each call; callers may filter and reorder it freely.
func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	if r.cache != nil {
		var cached []models.Vehicle
		err := r.cache.Get(ctx, catalogCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		// A miss is the normal cold path; anything else deserves a trace
		// before falling through to Mongo.
		if !cache.IsMiss(err) && r.logger != nil {
			r.logger.WithError(err).Warn("Catalog cache read failed")
		}
	}

	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, catalogCacheKey, vehicles, r.cacheTTL)
	}
	return vehicles, nil
}

func (r *vehicleRepository) ListFeatured(ctx context.Context, limit int) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode featured vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) invalidateCatalogCache(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, catalogCacheKey)
	}
}
