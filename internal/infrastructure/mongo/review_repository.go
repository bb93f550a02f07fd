package mongo

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// ReviewRepository persists submitted reviews.
type ReviewRepository struct {
	reviews *mongo.Collection
}

func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{reviews: db.Collection(collectionName)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.reviews.InsertOne(ctx, toReviewDocument(*review))
	return err
}

// ListByInstitution returns one page of reviews, newest first, and the total count.
func (r *ReviewRepository) ListByInstitution(ctx context.Context, institutionID string, paging application.Paging) ([]domain.Review, int, error) {
	filter := bson.M{"institutionId": institutionID}

	total, err := r.reviews.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.reviews.Find(ctx, filter, pageOptions("createdAt", paging.Offset(), paging.Limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return reviews, int(total), nil
}

// Summary aggregates the review count and mean review average.
func (r *ReviewRepository) Summary(ctx context.Context, institutionID string) (int, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"institutionId": institutionID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"average": bson.M{"$avg": "$average"},
		}}},
	}
	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return 0, 0, cursor.Err()
	}
	var agg struct {
		Count   int      `bson:"count"`
		Average *float64 `bson:"average"`
	}
	if err := cursor.Decode(&agg); err != nil {
		return 0, 0, err
	}
	if agg.Average == nil {
		return agg.Count, 0, nil
	}
	return agg.Count, math.Round(*agg.Average*10) / 10, nil
}

// pageOptions sorts newest first by field and applies skip/limit.
func pageOptions(field string, offset, limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
		if offset > 0 {
			opts.SetSkip(int64(offset))
		}
	}
	return opts
}
