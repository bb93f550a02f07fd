package application

import (
	"context"
	"math"
	"time"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

// ClaimRepository exposes admin operations on claims.
type ClaimRepository interface {
	Find(ctx context.Context, filter ClaimFilter, paging Paging) ([]publicdomain.Claim, int, error)
	FindByID(ctx context.Context, id string) (*publicdomain.Claim, error)
	// UpdateStatus stores the new status only while the claim is still in from.
	// It returns publicdomain.ErrNotFound when no claim matches id and from.
	UpdateStatus(ctx context.Context, id string, from, to publicdomain.ClaimStatus, at time.Time) error
}

// InquiryRepository exposes admin operations on inquiries.
type InquiryRepository interface {
	Find(ctx context.Context, filter InquiryFilter, paging Paging) ([]publicdomain.Inquiry, int, error)
	FindByID(ctx context.Context, id string) (*publicdomain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, from, to publicdomain.InquiryStatus, at time.Time) error
	CountByStatus(ctx context.Context, institutionID string) (admindomain.InquiryCounts, error)
}

// ReviewSummarizer reports submitted review totals.
type ReviewSummarizer interface {
	Summary(ctx context.Context, institutionID string) (count int, average float64, err error)
}

// InstitutionFinder resolves catalog entries.
type InstitutionFinder interface {
	FindByID(ctx context.Context, id string) (*publicdomain.Institution, error)
}

// ClaimFilter expresses admin search criteria.
type ClaimFilter struct {
	Status        publicdomain.ClaimStatus
	InstitutionID string
}

// InquiryFilter expresses admin search criteria. Term matches student
// name, email or grade, case-insensitively.
type InquiryFilter struct {
	InstitutionID string
	Status        publicdomain.InquiryStatus
	Term          string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// Offset returns the zero-based index of the first item on the page. It
// saturates at math.MaxInt instead of overflowing for huge pages.
func (p Paging) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ClaimService describes claim moderation use-cases.
type ClaimService interface {
	List(ctx context.Context, filter ClaimFilter, paging Paging) ([]publicdomain.Claim, int, error)
	Approve(ctx context.Context, id string) (*publicdomain.Claim, error)
	Reject(ctx context.Context, id string) (*publicdomain.Claim, error)
}

// InquiryService describes inquiry management use-cases.
type InquiryService interface {
	List(ctx context.Context, filter InquiryFilter, paging Paging) ([]publicdomain.Inquiry, int, error)
	UpdateStatus(ctx context.Context, id string, status publicdomain.InquiryStatus) (*publicdomain.Inquiry, error)
}

// DashboardService describes the institution dashboard.
type DashboardService interface {
	Stats(ctx context.Context, institutionID string) (*admindomain.InstitutionStats, error)
}
