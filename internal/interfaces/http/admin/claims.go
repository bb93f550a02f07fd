package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (h *Handler) claimListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.ClaimFilter{InstitutionID: strings.TrimSpace(query.Get("institutionId"))}
		if raw := strings.TrimSpace(query.Get("status")); raw != "" {
			status, err := publicdomain.ParseClaimStatus(raw)
			if err != nil {
				common.WriteValidation(h.logger, w, err.Error(), map[string]string{"status": err.Error()})
				return
			}
			filter.Status = status
		}
		page, limit := common.ParsePaging(query, defaultListLimit, maxListLimit)

		claims, total, err := h.claims.List(ctx, filter, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to list claims")
			return
		}
		items := make([]claimResponse, 0, len(claims))
		for _, c := range claims {
			items = append(items, toClaimResponse(c))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, claimListResponse{Items: items, Page: page, Limit: limit, Total: total})
	}
}

func (h *Handler) claimApproveHandler() http.HandlerFunc {
	return h.claimDecisionHandler("approved", func(ctx context.Context, id string) (*publicdomain.Claim, error) {
		return h.claims.Approve(ctx, id)
	})
}

func (h *Handler) claimRejectHandler() http.HandlerFunc {
	return h.claimDecisionHandler("rejected", func(ctx context.Context, id string) (*publicdomain.Claim, error) {
		return h.claims.Reject(ctx, id)
	})
}

func (h *Handler) claimDecisionHandler(verb string, decide func(context.Context, string) (*publicdomain.Claim, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		claim, err := decide(ctx, id)
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to decide claim")
			return
		}

		fields := []zap.Field{zap.String("claimId", claim.ID), zap.String("institution", claim.InstitutionName)}
		if user, ok := common.PrincipalFrom(r.Context()); ok {
			fields = append(fields, zap.String("by", user.Username))
		}
		h.logger.Info("claim "+verb, fields...)
		common.WriteJSON(h.logger, w, http.StatusOK, toClaimResponse(*claim))
	}
}
