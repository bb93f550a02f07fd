package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
)

// ErrInvalidCredentials is returned by an Authenticator for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator exchanges admin credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
}

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *zap.Logger
	institutions publicapp.InstitutionQueryService
	reviews      publicapp.ReviewService
	inquiries    publicapp.InquiryCommandService
	claims       publicapp.ClaimCommandService
	auth         Authenticator
	validator    *common.Validator
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *zap.Logger
	Institutions  publicapp.InstitutionQueryService
	Reviews       publicapp.ReviewService
	Inquiries     publicapp.InquiryCommandService
	Claims        publicapp.ClaimCommandService
	Authenticator Authenticator
	Validator     *common.Validator
}

// NewHandler constructs a public HTTP handler set.
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
		logger:       logger.Named("public"),
		institutions: cfg.Institutions,
		reviews:      cfg.Reviews,
		inquiries:    cfg.Inquiries,
		claims:       cfg.Claims,
		auth:         cfg.Authenticator,
		validator:    validator,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/institutions", h.institutionSearchHandler())
	r.Get("/institutions/suggest", h.institutionSuggestHandler())
	r.Get("/institutions/{slug}", h.institutionDetailHandler())
	r.Get("/institutions/{slug}/reviews", h.reviewListHandler())
	r.Post("/institutions/{slug}/reviews", h.reviewCreateHandler())
	r.Post("/institutions/{slug}/inquiries", h.inquiryCreateHandler())
	r.Get("/rankings", h.rankingsHandler())
	r.Get("/cities/{slug}", h.cityHandler())
	r.Get("/compare", h.compareHandler())
	r.Get("/filters", h.filterOptionsHandler())
	r.Post("/claims", h.claimCreateHandler())
	r.Post("/auth/login", h.loginHandler())
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether to continue.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := common.DecodeJSON(w, r, dst); err != nil {
		common.WriteDecodeError(h.logger, w, err)
		return false
	}
	if err := h.validator.ValidateStruct(dst); err != nil {
		common.WriteValidation(h.logger, w, "validation failed", common.FormatValidationErrors(err))
		return false
	}
	return true
}
