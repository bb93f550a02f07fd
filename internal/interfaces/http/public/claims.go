package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

func (h *Handler) claimCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req claimRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		claim, err := h.claims.Submit(ctx, publicapp.SubmitClaimCommand{
			Mode:            domain.ClaimMode(req.Mode),
			InstitutionID:   req.InstitutionID,
			InstitutionName: req.InstitutionName,
			City:            req.City,
			Type:            domain.InstitutionType(strings.ToUpper(strings.TrimSpace(req.Type))),
			ContactPerson:   req.ContactPerson,
			Position:        req.Position,
			OfficialEmail:   req.OfficialEmail,
			Phone:           req.Phone,
		})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to submit claim")
			return
		}

		h.logger.Info("claim submitted",
			zap.String("claimId", claim.ID),
			zap.String("mode", string(claim.Mode)),
			zap.String("institution", claim.InstitutionName),
		)
		common.WriteJSON(h.logger, w, http.StatusCreated, claimResponse{
			ID:              claim.ID,
			Mode:            string(claim.Mode),
			InstitutionID:   claim.InstitutionID,
			InstitutionName: claim.InstitutionName,
			Status:          string(claim.Status),
			SubmittedAt:     claim.SubmittedAt,
		})
	}
}
