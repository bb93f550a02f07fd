package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/config"
	mongodoc "github.com/edurank-nepal/api/internal/infrastructure/mongo"
	"github.com/edurank-nepal/api/internal/seed"
)

type seedFlags struct {
	catalogFile string
	drop        bool
	randomSeed  int64
	opts        seed.Options
}

func newSeedCmd(c *cli) *cobra.Command {
	var f seedFlags

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the catalog and sample data into MongoDB",
		Long: `Seed connects to the MongoDB configured by MONGO_URI and MONGO_DB, creates
the indexes, writes the institution catalog and then generates sample
reviews, inquiries and claims.

The catalog is read from --catalog (default CATALOG_FILE). When the file is
missing or invalid the built-in catalog is used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if f.catalogFile == "" {
				f.catalogFile = cfg.CatalogFile
			}
			return runSeed(cmd.Context(), c.logger, cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.catalogFile, "catalog", "", "schools.json to load (default CATALOG_FILE)")
	cmd.Flags().BoolVar(&f.drop, "drop", false, "Drop existing collections before seeding")
	cmd.Flags().Int64Var(&f.randomSeed, "seed", time.Now().UnixNano(), "Random seed for reproducible data")
	cmd.Flags().IntVar(&f.opts.Reviews, "reviews", 120, "Number of sample reviews")
	cmd.Flags().IntVar(&f.opts.Inquiries, "inquiries", 20, "Number of sample inquiries")
	cmd.Flags().IntVar(&f.opts.Claims, "claims", 6, "Number of sample claims")
	cmd.Flags().IntVar(&f.opts.MaxReviewsPerInstitution, "max-reviews", 12, "Maximum reviews per institution")
	return cmd
}

func runSeed(ctx context.Context, logger *zap.Logger, cfg config.Config, f seedFlags) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	client, err := mongodoc.Connect(ctx, cfg.MongoURI, cfg.Timeout)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	collections := mongodoc.Collections{
		Institutions: cfg.Collections.Institutions,
		Reviews:      cfg.Collections.Reviews,
		Inquiries:    cfg.Collections.Inquiries,
		Claims:       cfg.Collections.Claims,
	}

	if f.drop {
		if err := mongodoc.DropAll(ctx, db, collections); err != nil {
			return err
		}
		logger.Info("dropped collections", zap.String("db", cfg.MongoDatabase))
	}
	if err := mongodoc.EnsureIndexes(ctx, db, collections); err != nil {
		return err
	}

	list := catalog.NewLoader(f.catalogFile, logger.Named("catalog")).Load(ctx)
	ds := seed.Generate(rand.New(rand.NewSource(f.randomSeed)), list, f.opts, time.Now().UTC())

	report, err := seed.Write(ctx, seed.Targets{
		Institutions: mongodoc.NewInstitutionRepository(db, collections.Institutions),
		Reviews:      mongodoc.NewReviewRepository(db, collections.Reviews),
		Inquiries:    mongodoc.NewInquiryRepository(db, collections.Inquiries),
		Claims:       mongodoc.NewClaimRepository(db, collections.Claims),
	}, list, ds)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	logger.Info("seed complete",
		zap.String("db", cfg.MongoDatabase),
		zap.Int64("seed", f.randomSeed),
		zap.Int("institutions", report.Institutions),
		zap.Int("pruned", report.Pruned),
		zap.Int("reviews", report.Reviews),
		zap.Int("inquiries", report.Inquiries),
		zap.Int("claims", report.Claims))
	return nil
}
