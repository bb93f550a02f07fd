package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	"github.com/edurank-nepal/api/internal/public/domain"
)

// InquiryRepository keeps inquiries in memory.
type InquiryRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Inquiry
	order []string
}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{byID: make(map[string]domain.Inquiry)}
}

func (r *InquiryRepository) Create(_ context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[inquiry.ID]; !exists {
		r.order = append(r.order, inquiry.ID)
	}
	r.byID[inquiry.ID] = *inquiry
	return nil
}

// Find returns matching inquiries, newest first.
func (r *InquiryRepository) Find(_ context.Context, filter adminapp.InquiryFilter, paging adminapp.Paging) ([]domain.Inquiry, int, error) {
	term := strings.ToLower(strings.TrimSpace(filter.Term))

	r.mu.RLock()
	matched := make([]domain.Inquiry, 0)
	for _, id := range r.order {
		inquiry := r.byID[id]
		if filter.InstitutionID != "" && inquiry.InstitutionID != filter.InstitutionID {
			continue
		}
		if filter.Status != "" && inquiry.Status != filter.Status {
			continue
		}
		if term != "" && !inquiryMatchesTerm(inquiry, term) {
			continue
		}
		matched = append(matched, inquiry)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, paging.Offset(), paging.Limit), len(matched), nil
}

func inquiryMatchesTerm(inquiry domain.Inquiry, term string) bool {
	return strings.Contains(strings.ToLower(inquiry.StudentName), term) ||
		strings.Contains(strings.ToLower(inquiry.Email), term) ||
		strings.Contains(strings.ToLower(inquiry.Grade), term)
}

func (r *InquiryRepository) FindByID(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inquiry, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inquiry, nil
}

func (r *InquiryRepository) UpdateStatus(_ context.Context, id string, from, to domain.InquiryStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry, ok := r.byID[id]
	if !ok || inquiry.Status != from {
		return domain.ErrNotFound
	}
	inquiry.Status = to
	inquiry.UpdatedAt = at
	r.byID[id] = inquiry
	return nil
}

func (r *InquiryRepository) CountByStatus(_ context.Context, institutionID string) (admindomain.InquiryCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := admindomain.InquiryCounts{
		domain.InquiryPending:   0,
		domain.InquiryContacted: 0,
		domain.InquiryResolved:  0,
	}
	for _, inquiry := range r.byID {
		if inquiry.InstitutionID == institutionID {
			counts[inquiry.Status]++
		}
	}
	return counts, nil
}
