package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/interfaces/http/common"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger    *zap.Logger
	claims    adminapp.ClaimService
	inquiries adminapp.InquiryService
	dashboard adminapp.DashboardService
	validator *common.Validator
}

// Config provides dependencies for Handler.
type Config struct {
	Logger    *zap.Logger
	Claims    adminapp.ClaimService
	Inquiries adminapp.InquiryService
	Dashboard adminapp.DashboardService
	Validator *common.Validator
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validator := cfg.Validator
	if validator == nil {
		validator = common.NewValidator()
	}
	return &Handler{
		logger:    logger.Named("admin"),
		claims:    cfg.Claims,
		inquiries: cfg.Inquiries,
		dashboard: cfg.Dashboard,
		validator: validator,
	}
}

// Register mounts admin routes onto router. Authentication is applied by the caller.
func (h *Handler) Register(r chi.Router) {
	r.Get("/claims", h.claimListHandler())
	r.Post("/claims/{id}/approve", h.claimApproveHandler())
	r.Post("/claims/{id}/reject", h.claimRejectHandler())
	r.Get("/inquiries", h.inquiryListHandler())
	r.Patch("/inquiries/{id}", h.inquiryUpdateHandler())
	r.Get("/institutions/{id}/stats", h.institutionStatsHandler())
	r.Get("/auth/verify", h.authVerifyHandler())
}
