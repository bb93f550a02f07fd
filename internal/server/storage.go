package server

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/config"
	"github.com/edurank-nepal/api/internal/infrastructure/memory"
	mongodoc "github.com/edurank-nepal/api/internal/infrastructure/mongo"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
)

type reviewStore interface {
	publicapp.ReviewRepository
	adminapp.ReviewSummarizer
}

type inquiryStore interface {
	publicapp.InquiryWriter
	adminapp.InquiryRepository
}

type claimStore interface {
	publicapp.ClaimWriter
	adminapp.ClaimRepository
}

// repositories holds the stores behind the form workflows.
type repositories struct {
	reviews   reviewStore
	inquiries inquiryStore
	claims    claimStore

	client *mongo.Client
}

func newMemoryRepositories() *repositories {
	return &repositories{
		reviews:   memory.NewReviewRepository(),
		inquiries: memory.NewInquiryRepository(),
		claims:    memory.NewClaimRepository(),
	}
}

func newMongoRepositories(ctx context.Context, cfg config.Config) (*repositories, error) {
	client, err := mongodoc.Connect(ctx, cfg.MongoURI, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongodoc.EnsureIndexes(ctx, db, mongoCollections(cfg)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return &repositories{
		reviews:   mongodoc.NewReviewRepository(db, cfg.Collections.Reviews),
		inquiries: mongodoc.NewInquiryRepository(db, cfg.Collections.Inquiries),
		claims:    mongodoc.NewClaimRepository(db, cfg.Collections.Claims),
		client:    client,
	}, nil
}

func mongoCollections(cfg config.Config) mongodoc.Collections {
	return mongodoc.Collections{
		Institutions: cfg.Collections.Institutions,
		Reviews:      cfg.Collections.Reviews,
		Inquiries:    cfg.Collections.Inquiries,
		Claims:       cfg.Collections.Claims,
	}
}

// catalogMirror copies every catalog snapshot into the institutions collection
// so that reporting tools reading Mongo see the served catalog.
type catalogMirror struct {
	repo   *mongodoc.InstitutionRepository
	logger *zap.Logger
}

func (m *catalogMirror) OnCatalogReload(ctx context.Context, snap *catalog.Snapshot) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	written, deleted, err := m.repo.ReplaceAll(ctx, snap.Institutions)
	if err != nil {
		m.logger.Error("catalog mirror failed", zap.Uint64("version", snap.Version), zap.Error(err))
		return
	}
	m.logger.Info("catalog mirrored",
		zap.Uint64("version", snap.Version),
		zap.Int("written", written),
		zap.Int("deleted", deleted),
	)
}

func (r *repositories) close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}
