package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

// claimService implements ClaimService.
type claimService struct {
	repo ClaimRepository
	now  func() time.Time
}

func NewClaimService(repo ClaimRepository) ClaimService {
	return &claimService{repo: repo, now: time.Now}
}

func (s *claimService) List(ctx context.Context, filter ClaimFilter, paging Paging) ([]publicdomain.Claim, int, error) {
	return s.repo.Find(ctx, filter, normalizePaging(paging))
}

func (s *claimService) Approve(ctx context.Context, id string) (*publicdomain.Claim, error) {
	return s.decide(ctx, id, publicdomain.ClaimApproved)
}

func (s *claimService) Reject(ctx context.Context, id string) (*publicdomain.Claim, error) {
	return s.decide(ctx, id, publicdomain.ClaimRejected)
}

func (s *claimService) decide(ctx context.Context, id string, decision publicdomain.ClaimStatus) (*publicdomain.Claim, error) {
	claim, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := claim.Status
	if err := admindomain.DecideClaim(claim, decision, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, claim.ID, from, claim.Status, *claim.DecidedAt); err != nil {
		if errors.Is(err, publicdomain.ErrNotFound) {
			// decided concurrently
			return nil, fmt.Errorf("%w: claim %s changed while deciding", admindomain.ErrInvalidTransition, id)
		}
		return nil, err
	}
	return claim, nil
}

const (
	defaultAdminLimit = 50
	maxAdminLimit     = 200
)

func normalizePaging(p Paging) Paging {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultAdminLimit
	}
	if p.Limit > maxAdminLimit {
		p.Limit = maxAdminLimit
	}
	return p
}
