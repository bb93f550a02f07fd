package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/config"
	mongodoc "github.com/edurank-nepal/api/internal/infrastructure/mongo"
	adminhttp "github.com/edurank-nepal/api/internal/interfaces/http/admin"
	commonhttp "github.com/edurank-nepal/api/internal/interfaces/http/common"
	publichttp "github.com/edurank-nepal/api/internal/interfaces/http/public"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/search"
)

// Server owns the HTTP listener, the catalog lifecycle and the storage
// backends, and wires them into the public and admin handlers.
type Server struct {
	cfg       config.Config
	logger    *zap.Logger
	store     *catalog.Store
	index     *search.Index
	watcher   *catalog.Watcher
	refresher *catalog.Refresher
	repos     *repositories
	auth      *Authenticator
	router    chi.Router
}

// New builds the server and loads the first catalog snapshot.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var repos *repositories
	switch cfg.Storage {
	case config.StorageMongo:
		r, err := newMongoRepositories(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repos = r
	default:
		repos = newMemoryRepositories()
	}

	index, err := search.NewIndex(logger.Named("search"))
	if err != nil {
		_ = repos.close(ctx)
		return nil, err
	}

	store := catalog.NewStore(catalog.NewLoader(cfg.CatalogFile, logger.Named("catalog")), logger.Named("catalog"))
	store.OnReload(index.OnCatalogReload)
	if repos.client != nil {
		mirror := &catalogMirror{
			repo:   mongodoc.NewInstitutionRepository(repos.client.Database(cfg.MongoDatabase), cfg.Collections.Institutions),
			logger: logger.Named("mirror"),
		}
		store.OnReload(mirror.OnCatalogReload)
	}
	store.Reload(ctx)

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		index:     index,
		refresher: catalog.NewRefresher(cfg.CatalogRefresh, store, logger.Named("refresh")),
		repos:     repos,
		auth:      NewAuthenticator(cfg.Auth),
	}
	if cfg.CatalogWatch {
		w, err := catalog.NewWatcher(cfg.CatalogFile, store, logger.Named("watch"))
		if err != nil {
			logger.Warn("catalog watcher unavailable", zap.Error(err))
		} else {
			s.watcher = w
		}
	}
	s.router = s.routes()
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	validator := commonhttp.NewValidator()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(accessLog(s.logger.Named("http")))
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.cfg.AllowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:        s.logger,
		Institutions:  publicapp.NewInstitutionQueryService(s.store, s.index),
		Reviews:       publicapp.NewReviewService(s.store, s.repos.reviews),
		Inquiries:     publicapp.NewInquiryCommandService(s.store, s.repos.inquiries),
		Claims:        publicapp.NewClaimCommandService(s.store, s.repos.claims),
		Authenticator: s.auth,
		Validator:     validator,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:    s.logger,
		Claims:    adminapp.NewClaimService(s.repos.claims),
		Inquiries: adminapp.NewInquiryService(s.repos.inquiries),
		Dashboard: adminapp.NewDashboardService(s.store, s.repos.reviews, s.repos.inquiries, s.repos.claims),
		Validator: validator,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.requireRole(commonhttp.RoleAdmin))
		adminHandler.Register(r)
	})
	return router
}

// Run starts background catalog maintenance and serves HTTP until ctx is
// cancelled, then shuts everything down.
func (s *Server) Run(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Start(ctx); err != nil {
			s.logger.Warn("catalog watcher not started", zap.Error(err))
		}
	}
	if err := s.refresher.Start(ctx); err != nil {
		s.shutdownBackground(ctx)
		return err
	}

	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr), zap.String("storage", s.cfg.Storage))
		errChan <- httpServer.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http shutdown", zap.Error(err))
		}
		cancel()
		<-errChan
	}

	s.shutdownBackground(context.Background())
	return runErr
}

func (s *Server) shutdownBackground(ctx context.Context) {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	s.refresher.Stop()
	if err := s.index.Close(); err != nil {
		s.logger.Warn("closing suggest index", zap.Error(err))
	}
	if err := s.repos.close(ctx); err != nil {
		s.logger.Error("mongo disconnect", zap.Error(err))
	}
}

// healthHandler reports the catalog generation and, with Mongo storage, database reachability.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.store.Snapshot()
		body := map[string]any{
			"status":         "ok",
			"time":           time.Now().UTC().Format(time.RFC3339),
			"storage":        s.cfg.Storage,
			"catalogVersion": snap.Version,
			"institutions":   len(snap.Institutions),
		}

		if s.repos.client != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := s.repos.client.Ping(ctx, readpref.Primary()); err != nil {
				body["status"] = "degraded"
				body["error"] = err.Error()
				commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, body)
				return
			}
		}
		commonhttp.WriteJSON(s.logger, w, http.StatusOK, body)
	}
}
