// Package memory provides process-local repositories used when no database
// is configured and in tests.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// ReviewRepository keeps reviews in memory.
type ReviewRepository struct {
	mu    sync.RWMutex
	items []domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, cloneReview(*review))
	return nil
}

// ListByInstitution returns the newest reviews first.
func (r *ReviewRepository) ListByInstitution(_ context.Context, institutionID string, paging publicapp.Paging) ([]domain.Review, int, error) {
	r.mu.RLock()
	matched := make([]domain.Review, 0)
	for _, review := range r.items {
		if review.InstitutionID == institutionID {
			matched = append(matched, cloneReview(review))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, paging.Offset(), paging.Limit), len(matched), nil
}

// Summary returns the review count and the mean of review averages.
func (r *ReviewRepository) Summary(_ context.Context, institutionID string) (int, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	sum := 0.0
	for _, review := range r.items {
		if review.InstitutionID != institutionID {
			continue
		}
		count++
		sum += review.Average()
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, math.Round(sum/float64(count)*10) / 10, nil
}

func cloneReview(review domain.Review) domain.Review {
	ratings := make(map[domain.ReviewCategory]int, len(review.Ratings))
	for k, v := range review.Ratings {
		ratings[k] = v
	}
	review.Ratings = ratings
	return review
}

// page slices items for offset and limit. A non-positive limit returns the rest.
func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
