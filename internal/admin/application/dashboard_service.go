package application

import (
	"context"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

type dashboardService struct {
	institutions InstitutionFinder
	reviews      ReviewSummarizer
	inquiries    InquiryRepository
	claims       ClaimRepository
}

func NewDashboardService(institutions InstitutionFinder, reviews ReviewSummarizer, inquiries InquiryRepository, claims ClaimRepository) DashboardService {
	return &dashboardService{institutions: institutions, reviews: reviews, inquiries: inquiries, claims: claims}
}

func (s *dashboardService) Stats(ctx context.Context, institutionID string) (*admindomain.InstitutionStats, error) {
	inst, err := s.institutions.FindByID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	count, average, err := s.reviews.Summary(ctx, inst.ID)
	if err != nil {
		return nil, err
	}
	counts, err := s.inquiries.CountByStatus(ctx, inst.ID)
	if err != nil {
		return nil, err
	}
	_, pending, err := s.claims.Find(ctx, ClaimFilter{Status: publicdomain.ClaimPending, InstitutionID: inst.ID}, Paging{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}

	return &admindomain.InstitutionStats{
		InstitutionID:    inst.ID,
		InstitutionName:  inst.Name,
		CatalogRating:    inst.Rating,
		CatalogReviews:   inst.Reviews,
		EduRankScore:     inst.EduRankScore,
		SubmittedReviews: count,
		SubmittedAverage: average,
		Inquiries:        counts,
		PendingClaims:    pending,
	}, nil
}
