package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// InstitutionRepository implements application.InstitutionRepository using MongoDB.
type InstitutionRepository struct {
	collection *mongo.Collection
}

// NewInstitutionRepository creates a new Mongo-backed catalog repository.
func NewInstitutionRepository(db *mongo.Database, collectionName string) *InstitutionRepository {
	return &InstitutionRepository{collection: db.Collection(collectionName)}
}

// List returns the whole catalog ordered by EduRank score.
func (r *InstitutionRepository) List(ctx context.Context) ([]domain.Institution, error) {
	opts := options.Find().SetSort(bson.D{{Key: "eduRankScore", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]domain.Institution, 0)
	for cursor.Next(ctx) {
		var doc InstitutionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, mapInstitutionDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InstitutionRepository) FindBySlug(ctx context.Context, slug string) (*domain.Institution, error) {
	return r.findOne(ctx, bson.M{"slug": strings.ToLower(strings.TrimSpace(slug))})
}

func (r *InstitutionRepository) FindByID(ctx context.Context, id string) (*domain.Institution, error) {
	return r.findOne(ctx, bson.M{"_id": strings.TrimSpace(id)})
}

func (r *InstitutionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Institution, error) {
	var doc InstitutionDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inst := mapInstitutionDocument(doc)
	return &inst, nil
}

// ReplaceAll upserts every institution and removes the ones not in list.
// It returns the number of upserted and deleted documents.
func (r *InstitutionRepository) ReplaceAll(ctx context.Context, list []domain.Institution) (int, int, error) {
	now := time.Now().UTC()
	ids := make([]string, 0, len(list))
	models := make([]mongo.WriteModel, 0, len(list))
	for _, inst := range list {
		ids = append(ids, inst.ID)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": inst.ID}).
			SetReplacement(toInstitutionDocument(inst, now)).
			SetUpsert(true))
	}

	written := 0
	if len(models) > 0 {
		result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
		if err != nil {
			return 0, 0, fmt.Errorf("write institutions: %w", err)
		}
		written = int(result.UpsertedCount + result.MatchedCount)
	}

	deleted, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	if err != nil {
		return written, 0, fmt.Errorf("prune institutions: %w", err)
	}
	return written, int(deleted.DeletedCount), nil
}
