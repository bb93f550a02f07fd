package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// InquiryRepository stores admission inquiries for both the public form and the admin inbox.
type InquiryRepository struct {
	inquiries *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database, collectionName string) *InquiryRepository {
	return &InquiryRepository{inquiries: db.Collection(collectionName)}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	_, err := r.inquiries.InsertOne(ctx, toInquiryDocument(*inquiry))
	return err
}

// Find converts the admin filter to a Mongo query and returns one page, newest first.
func (r *InquiryRepository) Find(ctx context.Context, filter adminapp.InquiryFilter, paging adminapp.Paging) ([]domain.Inquiry, int, error) {
	mongoFilter := inquiryFilter(filter)

	total, err := r.inquiries.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, 0, err
	}
	cursor, err := r.inquiries.Find(ctx, mongoFilter, pageOptions("createdAt", paging.Offset(), paging.Limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	inquiries := make([]domain.Inquiry, 0)
	for cursor.Next(ctx) {
		var doc InquiryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, mapInquiryDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return inquiries, int(total), nil
}

func inquiryFilter(filter adminapp.InquiryFilter) bson.M {
	mongoFilter := bson.M{}
	if id := strings.TrimSpace(filter.InstitutionID); id != "" {
		mongoFilter["institutionId"] = id
	}
	if filter.Status != "" {
		mongoFilter["status"] = string(filter.Status)
	}
	if term := strings.TrimSpace(filter.Term); term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"studentName": pattern},
			bson.M{"email": pattern},
			bson.M{"grade": pattern},
		}
	}
	return mongoFilter
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	var doc InquiryDocument
	if err := r.inquiries.FindOne(ctx, bson.M{"_id": strings.TrimSpace(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inquiry := mapInquiryDocument(doc)
	return &inquiry, nil
}

// UpdateStatus only matches while the inquiry is still in from.
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, from, to domain.InquiryStatus, at time.Time) error {
	result, err := r.inquiries.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to), "updatedAt": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InquiryRepository) CountByStatus(ctx context.Context, institutionID string) (admindomain.InquiryCounts, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"institutionId": institutionID}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.inquiries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := admindomain.InquiryCounts{
		domain.InquiryPending:   0,
		domain.InquiryContacted: 0,
		domain.InquiryResolved:  0,
	}
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[domain.InquiryStatus(row.Status)] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
