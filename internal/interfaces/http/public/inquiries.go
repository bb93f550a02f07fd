package public

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
)

func (h *Handler) inquiryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req inquiryRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		inquiry, err := h.inquiries.Submit(ctx, publicapp.SubmitInquiryCommand{
			Institution: chi.URLParam(r, "slug"),
			StudentName: req.StudentName,
			Email:       req.Email,
			Phone:       req.Phone,
			Grade:       req.Grade,
			Message:     req.Message,
		})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to send inquiry")
			return
		}

		h.logger.Info("inquiry received",
			zap.String("inquiryId", inquiry.ID),
			zap.String("institutionId", inquiry.InstitutionID),
		)
		common.WriteJSON(h.logger, w, http.StatusCreated, inquiryResponse{
			ID:            inquiry.ID,
			InstitutionID: inquiry.InstitutionID,
			Status:        string(inquiry.Status),
			CreatedAt:     inquiry.CreatedAt,
		})
	}
}
