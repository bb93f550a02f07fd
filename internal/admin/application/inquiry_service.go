package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

type inquiryService struct {
	repo InquiryRepository
	now  func() time.Time
}

func NewInquiryService(repo InquiryRepository) InquiryService {
	return &inquiryService{repo: repo, now: time.Now}
}

func (s *inquiryService) List(ctx context.Context, filter InquiryFilter, paging Paging) ([]publicdomain.Inquiry, int, error) {
	filter.Term = strings.TrimSpace(filter.Term)
	return s.repo.Find(ctx, filter, normalizePaging(paging))
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id string, status publicdomain.InquiryStatus) (*publicdomain.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := inquiry.Status
	if err := admindomain.TransitionInquiry(inquiry, status, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, inquiry.ID, from, inquiry.Status, inquiry.UpdatedAt); err != nil {
		if errors.Is(err, publicdomain.ErrNotFound) {
			return nil, fmt.Errorf("%w: inquiry %s changed while updating", admindomain.ErrInvalidTransition, id)
		}
		return nil, err
	}
	return inquiry, nil
}
