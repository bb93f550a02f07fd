package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
)

func (h *Handler) institutionStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := h.dashboard.Stats(ctx, strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to load institution stats")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toStatsResponse(*stats))
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.PrincipalFrom(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "not signed in")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}
