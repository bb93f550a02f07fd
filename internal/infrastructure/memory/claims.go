package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// ClaimRepository keeps claims in memory.
type ClaimRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Claim
	order []string
}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{byID: make(map[string]domain.Claim)}
}

func (r *ClaimRepository) Create(_ context.Context, claim *domain.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[claim.ID]; !exists {
		r.order = append(r.order, claim.ID)
	}
	r.byID[claim.ID] = cloneClaim(*claim)
	return nil
}

// Find returns matching claims, newest first.
func (r *ClaimRepository) Find(_ context.Context, filter adminapp.ClaimFilter, paging adminapp.Paging) ([]domain.Claim, int, error) {
	r.mu.RLock()
	matched := make([]domain.Claim, 0)
	for _, id := range r.order {
		claim := r.byID[id]
		if filter.Status != "" && claim.Status != filter.Status {
			continue
		}
		if filter.InstitutionID != "" && claim.InstitutionID != filter.InstitutionID {
			continue
		}
		matched = append(matched, cloneClaim(claim))
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SubmittedAt.After(matched[j].SubmittedAt)
	})
	return page(matched, paging.Offset(), paging.Limit), len(matched), nil
}

func (r *ClaimRepository) FindByID(_ context.Context, id string) (*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	claim, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	claim = cloneClaim(claim)
	return &claim, nil
}

func (r *ClaimRepository) UpdateStatus(_ context.Context, id string, from, to domain.ClaimStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	claim, ok := r.byID[id]
	if !ok || claim.Status != from {
		return domain.ErrNotFound
	}
	claim.Status = to
	claim.DecidedAt = &at
	r.byID[id] = claim
	return nil
}

func cloneClaim(claim domain.Claim) domain.Claim {
	if claim.DecidedAt != nil {
		decided := *claim.DecidedAt
		claim.DecidedAt = &decided
	}
	return claim
}
