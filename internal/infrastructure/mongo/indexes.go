package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collections names the collections used by the repositories.
type Collections struct {
	Institutions string
	Reviews      string
	Inquiries    string
	Claims       string
}

// Connect opens a client and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// indexModels returns the indexes each collection needs.
func indexModels(c Collections) map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		c.Institutions: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "eduRankScore", Value: -1}}},
			{Keys: bson.D{{Key: "city", Value: 1}}},
		},
		c.Reviews: {
			{Keys: bson.D{{Key: "institutionId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		c.Inquiries: {
			{Keys: bson.D{{Key: "institutionId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		c.Claims: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submittedAt", Value: -1}}},
			{Keys: bson.D{{Key: "institutionId", Value: 1}}},
		},
	}
}

// EnsureIndexes creates the indexes if they are missing.
func EnsureIndexes(ctx context.Context, db *mongo.Database, c Collections) error {
	for name, models := range indexModels(c) {
		if name == "" || len(models) == 0 {
			continue
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// DropAll drops every configured collection. Missing collections are not an error.
func DropAll(ctx context.Context, db *mongo.Database, c Collections) error {
	for _, name := range []string{c.Institutions, c.Reviews, c.Inquiries, c.Claims} {
		if name == "" {
			continue
		}
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}
