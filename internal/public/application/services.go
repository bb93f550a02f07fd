package application

import (
	"context"
	"math"

	"github.com/edurank-nepal/api/internal/public/domain"
	"github.com/edurank-nepal/api/internal/ranking"
)

// InstitutionRepository abstracts read access to the catalog.
type InstitutionRepository interface {
	List(ctx context.Context) ([]domain.Institution, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Institution, error)
	FindByID(ctx context.Context, id string) (*domain.Institution, error)
}

// ReviewRepository persists submitted reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByInstitution(ctx context.Context, institutionID string, paging Paging) ([]domain.Review, int, error)
}

// InquiryWriter stores admission inquiries.
type InquiryWriter interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
}

// ClaimWriter stores claim and registration requests.
type ClaimWriter interface {
	Create(ctx context.Context, claim *domain.Claim) error
}

// Suggester returns institution ids for a partially typed name.
type Suggester interface {
	Suggest(ctx context.Context, q string, limit int) ([]string, error)
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
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

// MaxCompare is the most institutions shown side by side.
const MaxCompare = 3

var (
	ErrTooManyToCompare error = &domain.ValidationError{Field: "id", Message: "at most 3 institutions can be compared"}
	ErrNothingToCompare error = &domain.ValidationError{Field: "id", Message: "select at least one institution to compare"}
)

// SearchResult is one page of scored, filtered and ordered institutions.
type SearchResult struct {
	Items []ranking.Scored
	Total int
	Page  int
	Limit int
}

// Comparison lays institutions side by side and marks the standouts.
// Highlights are only set when more than one institution is compared.
type Comparison struct {
	Institutions   []domain.Institution
	BestRatingID   string
	LowestAnnualID string
}

// InstitutionQueryService describes catalog read use-cases.
type InstitutionQueryService interface {
	Search(ctx context.Context, filters ranking.FilterState, paging Paging) (*SearchResult, error)
	Detail(ctx context.Context, slugOrID string) (*domain.Institution, error)
	Rankings(ctx context.Context, category string, limit int) ([]domain.Institution, error)
	ByCity(ctx context.Context, city string) ([]domain.Institution, error)
	Compare(ctx context.Context, ids []string) (*Comparison, error)
	Suggest(ctx context.Context, q string, limit int) ([]domain.Institution, error)
}

// ReviewService handles review submission and listing.
type ReviewService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error)
	List(ctx context.Context, slugOrID string, paging Paging) ([]domain.Review, int, error)
}

// InquiryCommandService handles admission inquiries.
type InquiryCommandService interface {
	Submit(ctx context.Context, cmd SubmitInquiryCommand) (*domain.Inquiry, error)
}

// ClaimCommandService handles listing claims and registrations.
type ClaimCommandService interface {
	Submit(ctx context.Context, cmd SubmitClaimCommand) (*domain.Claim, error)
}

// SubmitReviewCommand captures a review form.
type SubmitReviewCommand struct {
	Institution string
	AuthorName  string
	Ratings     map[domain.ReviewCategory]int
	Comment     string
}

// SubmitInquiryCommand captures an admission inquiry form.
type SubmitInquiryCommand struct {
	Institution string
	StudentName string
	Email       string
	Phone       string
	Grade       string
	Message     string
}

// SubmitClaimCommand captures the claim or register form.
type SubmitClaimCommand struct {
	Mode            domain.ClaimMode
	InstitutionID   string
	InstitutionName string
	City            string
	Type            domain.InstitutionType
	ContactPerson   string
	Position        string
	OfficialEmail   string
	Phone           string
}
