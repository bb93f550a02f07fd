package public

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

const maxReviewLimit = 50

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		page, limit := common.ParsePaging(query, publicapp.DefaultSearchLimit, maxReviewLimit)
		reviews, total, err := h.reviews.List(ctx, chi.URLParam(r, "slug"), publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to load reviews")
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, toReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{Items: items, Page: page, Limit: limit, Total: total})
	}
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req reviewRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		ratings := make(map[domain.ReviewCategory]int, len(req.Ratings))
		for k, v := range req.Ratings {
			ratings[domain.ReviewCategory(k)] = v
		}
		review, err := h.reviews.Submit(ctx, publicapp.SubmitReviewCommand{
			Institution: chi.URLParam(r, "slug"),
			AuthorName:  req.AuthorName,
			Ratings:     ratings,
			Comment:     req.Comment,
		})
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to submit review")
			return
		}

		h.logger.Info("review submitted",
			zap.String("reviewId", review.ID),
			zap.String("institutionId", review.InstitutionID),
			zap.Float64("average", review.Average()),
		)
		common.WriteJSON(h.logger, w, http.StatusCreated, toReviewResponse(*review))
	}
}
