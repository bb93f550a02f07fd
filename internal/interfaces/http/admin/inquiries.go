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

// inquiryListHandler lists inquiries, optionally narrowed to one institution,
// a status, and a search term matched against name, email and grade.
func (h *Handler) inquiryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.InquiryFilter{
			InstitutionID: strings.TrimSpace(query.Get("institutionId")),
			Term:          query.Get("q"),
		}
		if raw := strings.TrimSpace(query.Get("status")); raw != "" {
			status, err := publicdomain.ParseInquiryStatus(raw)
			if err != nil {
				common.WriteValidation(h.logger, w, err.Error(), map[string]string{"status": err.Error()})
				return
			}
			filter.Status = status
		}
		page, limit := common.ParsePaging(query, defaultListLimit, maxListLimit)

		inquiries, total, err := h.inquiries.List(ctx, filter, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to list inquiries")
			return
		}
		items := make([]inquiryResponse, 0, len(inquiries))
		for _, inq := range inquiries {
			items = append(items, toInquiryResponse(inq))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, inquiryListResponse{Items: items, Page: page, Limit: limit, Total: total})
	}
}

func (h *Handler) inquiryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req inquiryUpdateRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteDecodeError(h.logger, w, err)
			return
		}
		req.Status = strings.ToUpper(strings.TrimSpace(req.Status))
		if err := h.validator.ValidateStruct(req); err != nil {
			common.WriteValidation(h.logger, w, "validation failed", common.FormatValidationErrors(err))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		inquiry, err := h.inquiries.UpdateStatus(ctx, id, publicdomain.InquiryStatus(req.Status))
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to update inquiry")
			return
		}

		h.logger.Info("inquiry updated", zap.String("inquiryId", inquiry.ID), zap.String("status", string(inquiry.Status)))
		common.WriteJSON(h.logger, w, http.StatusOK, toInquiryResponse(*inquiry))
	}
}
