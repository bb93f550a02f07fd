package application

import (
	"context"
	"errors"
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
	"github.com/edurank-nepal/api/internal/ranking"
)

const (
	DefaultSearchLimit  = 20
	DefaultSuggestLimit = 5
	MaxSuggestLimit     = 20
)

// institutionQueryService is the concrete implementation of InstitutionQueryService.
type institutionQueryService struct {
	repo      InstitutionRepository
	suggester Suggester
}

// NewInstitutionQueryService creates a new institution query service.
// suggester may be nil, in which case Suggest falls back to a name scan.
func NewInstitutionQueryService(repo InstitutionRepository, suggester Suggester) InstitutionQueryService {
	return &institutionQueryService{repo: repo, suggester: suggester}
}

func (s *institutionQueryService) Search(ctx context.Context, filters ranking.FilterState, paging Paging) (*SearchResult, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Institution, 0, len(list))
	for _, inst := range list {
		if ranking.Matches(inst, filters) {
			matched = append(matched, inst)
		}
	}
	scored := ranking.Score(matched, filters)
	ranking.SortInstitutions(scored, ranking.ParseSortKey(paging.Sort))

	if paging.Limit <= 0 {
		paging.Limit = DefaultSearchLimit
	}
	if paging.Page <= 0 {
		paging.Page = 1
	}
	total := len(scored)
	start := paging.Offset()
	if start > total {
		start = total
	}
	end := total
	if paging.Limit < total-start {
		end = start + paging.Limit
	}

	return &SearchResult{
		Items: scored[start:end],
		Total: total,
		Page:  paging.Page,
		Limit: paging.Limit,
	}, nil
}

// Detail resolves either a slug or an id.
func (s *institutionQueryService) Detail(ctx context.Context, slugOrID string) (*domain.Institution, error) {
	return resolveInstitution(ctx, s.repo, slugOrID)
}

func (s *institutionQueryService) Rankings(ctx context.Context, category string, limit int) ([]domain.Institution, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	result := make([]domain.Institution, 0, len(list))
	for _, inst := range list {
		if category == "" || strings.EqualFold(category, "ALL") || strings.EqualFold(category, string(inst.Type)) {
			result = append(result, inst)
		}
	}
	ranking.SortByEduRank(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ByCity matches the city slug against city and address, case-insensitively.
func (s *institutionQueryService) ByCity(ctx context.Context, city string) ([]domain.Institution, error) {
	needle := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(city), "-", " "))
	if needle == "" {
		return []domain.Institution{}, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Institution, 0)
	for _, inst := range list {
		if strings.Contains(strings.ToLower(inst.City), needle) || strings.Contains(strings.ToLower(inst.Address), needle) {
			result = append(result, inst)
		}
	}
	return result, nil
}

func (s *institutionQueryService) Compare(ctx context.Context, ids []string) (*Comparison, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	switch {
	case len(unique) == 0:
		return nil, ErrNothingToCompare
	case len(unique) > MaxCompare:
		return nil, ErrTooManyToCompare
	}

	cmp := &Comparison{Institutions: make([]domain.Institution, 0, len(unique))}
	for _, id := range unique {
		inst, err := s.Detail(ctx, id)
		if err != nil {
			return nil, err
		}
		cmp.Institutions = append(cmp.Institutions, *inst)
	}

	if len(cmp.Institutions) > 1 {
		best, cheapest := cmp.Institutions[0], cmp.Institutions[0]
		for _, inst := range cmp.Institutions[1:] {
			if inst.Rating > best.Rating {
				best = inst
			}
			if inst.AnnualFee() < cheapest.AnnualFee() {
				cheapest = inst
			}
		}
		cmp.BestRatingID = best.ID
		cmp.LowestAnnualID = cheapest.ID
	}
	return cmp, nil
}

func (s *institutionQueryService) Suggest(ctx context.Context, q string, limit int) ([]domain.Institution, error) {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if limit > MaxSuggestLimit {
		limit = MaxSuggestLimit
	}
	if s.suggester == nil {
		return s.scanNames(ctx, q, limit)
	}

	ids, err := s.suggester.Suggest(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Institution, 0, len(ids))
	for _, id := range ids {
		inst, err := s.repo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, *inst)
	}
	return result, nil
}

func (s *institutionQueryService) scanNames(ctx context.Context, q string, limit int) ([]domain.Institution, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []domain.Institution{}, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Institution, 0, limit)
	for _, inst := range list {
		if strings.Contains(strings.ToLower(inst.Name), q) {
			result = append(result, inst)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}
