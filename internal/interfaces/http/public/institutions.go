package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/ranking"
)

const maxSearchLimit = 100

func (h *Handler) institutionSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		page, limit := common.ParsePaging(query, publicapp.DefaultSearchLimit, maxSearchLimit)
		paging := publicapp.Paging{
			Page:  page,
			Limit: limit,
			Sort:  strings.TrimSpace(query.Get("sort")),
		}

		result, err := h.institutions.Search(ctx, ranking.FilterFromQuery(query), paging)
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to search institutions")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toSearchResponse(result))
	}
}

// institutionDetailHandler returns one institution. Search filters passed in
// the query string produce the match score and its per-category breakdown.
func (h *Handler) institutionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		inst, err := h.institutions.Detail(ctx, chi.URLParam(r, "slug"))
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to load institution")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toDetailResponse(*inst, ranking.FilterFromQuery(r.URL.Query())))
	}
}

func (h *Handler) institutionSuggestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		limit := common.QueryInt(query, "limit", publicapp.DefaultSuggestLimit)
		list, err := h.institutions.Suggest(ctx, query.Get("q"), limit)
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to suggest institutions")
			return
		}
		items := make([]suggestionResponse, 0, len(list))
		for _, inst := range list {
			items = append(items, toSuggestion(inst))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) rankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		limit := common.QueryInt(query, "limit", 0)
		list, err := h.institutions.Rankings(ctx, query.Get("category"), limit)
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to load rankings")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, listResponse{Items: toInstitutionList(list), Total: len(list)})
	}
}

func (h *Handler) cityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := h.institutions.ByCity(ctx, chi.URLParam(r, "slug"))
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to load city")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, listResponse{Items: toInstitutionList(list), Total: len(list)})
	}
}

// compareHandler accepts repeated or comma-separated id parameters.
func (h *Handler) compareHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var ids []string
		for _, raw := range r.URL.Query()["id"] {
			ids = append(ids, strings.Split(raw, ",")...)
		}
		cmp, err := h.institutions.Compare(ctx, ids)
		if err != nil {
			common.WriteServiceError(h.logger, w, err, "failed to compare institutions")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, compareResponse{
			Items:          toInstitutionList(cmp.Institutions),
			BestRatingID:   cmp.BestRatingID,
			LowestAnnualID: cmp.LowestAnnualID,
		})
	}
}

func (h *Handler) filterOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, toOptionsResponse(ranking.SearchOptions()))
	}
}
