package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// ClaimRepository stores claim and registration requests.
type ClaimRepository struct {
	collection *mongo.Collection
}

func NewClaimRepository(db *mongo.Database, collection string) *ClaimRepository {
	return &ClaimRepository{collection: db.Collection(collection)}
}

func (r *ClaimRepository) Create(ctx context.Context, claim *domain.Claim) error {
	_, err := r.collection.InsertOne(ctx, toClaimDocument(*claim))
	return err
}

func (r *ClaimRepository) Find(ctx context.Context, filter adminapp.ClaimFilter, paging adminapp.Paging) ([]domain.Claim, int, error) {
	mongoFilter := claimFilter(filter)

	total, err := r.collection.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, 0, err
	}
	cursor, err := r.collection.Find(ctx, mongoFilter, pageOptions("submittedAt", paging.Offset(), paging.Limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	claims := make([]domain.Claim, 0)
	for cursor.Next(ctx) {
		var doc ClaimDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		claims = append(claims, mapClaimDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return claims, int(total), nil
}

func claimFilter(filter adminapp.ClaimFilter) bson.M {
	mongoFilter := bson.M{}
	if filter.Status != "" {
		mongoFilter["status"] = string(filter.Status)
	}
	if id := strings.TrimSpace(filter.InstitutionID); id != "" {
		mongoFilter["institutionId"] = id
	}
	return mongoFilter
}

func (r *ClaimRepository) FindByID(ctx context.Context, id string) (*domain.Claim, error) {
	var doc ClaimDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": strings.TrimSpace(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	claim := mapClaimDocument(doc)
	return &claim, nil
}

func (r *ClaimRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ClaimStatus, at time.Time) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to), "decidedAt": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
