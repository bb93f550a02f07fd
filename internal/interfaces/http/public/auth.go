package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
)

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if h.auth == nil {
			common.WriteError(h.logger, w, http.StatusServiceUnavailable, "login is not configured")
			return
		}

		var req loginRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		token, expiresAt, err := h.auth.Login(ctx, req.Username, req.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			h.logger.Warn("login rejected", zap.String("username", req.Username))
			common.WriteError(h.logger, w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		if err != nil {
			h.logger.Error("login failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to sign in")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		})
	}
}
