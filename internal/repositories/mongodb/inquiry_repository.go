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
)

type inquiryRepository struct {
	collection *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) interfaces.InquiryRepository {
	return &inquiryRepository{
		collection: db.Collection("inquiries"),
	}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = primitive.NewObjectID()
	inquiry.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepository) List(ctx context.Context, inquiryType models.InquiryType, limit, offset int) ([]models.Inquiry, int64, error) {
	filter := bson.M{}
	if inquiryType != "" {
		filter["type"] = inquiryType
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode inquiries: %w", err)
	}
	return inquiries, total, nil
}
