package domain

import publicdomain "github.com/edurank-nepal/api/internal/public/domain"

// InstitutionStats aggregates the dashboard numbers for one institution.
type InstitutionStats struct {
	InstitutionID   string
	InstitutionName string
	// Catalog figures as listed.
	CatalogRating  float64
	CatalogReviews int
	EduRankScore   *int
	// Reviews submitted through the site.
	SubmittedReviews int
	SubmittedAverage float64
	Inquiries        InquiryCounts
	PendingClaims    int
}

// InquiryCounts holds inquiry totals per status.
type InquiryCounts map[publicdomain.InquiryStatus]int

// Total sums all statuses.
func (c InquiryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// TotalReviews is the listed count plus site submissions.
func (s InstitutionStats) TotalReviews() int {
	return s.CatalogReviews + s.SubmittedReviews
}
