package admin

import (
	"time"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

type claimResponse struct {
	ID              string     `json:"id"`
	Mode            string     `json:"mode"`
	InstitutionID   string     `json:"institutionId,omitempty"`
	InstitutionName string     `json:"institutionName"`
	City            string     `json:"city"`
	Type            string     `json:"type"`
	ContactPerson   string     `json:"contactPerson"`
	Position        string     `json:"position"`
	OfficialEmail   string     `json:"officialEmail"`
	Phone           string     `json:"phone"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	DecidedAt       *time.Time `json:"decidedAt,omitempty"`
}

type claimListResponse struct {
	Items []claimResponse `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
}

type inquiryResponse struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institutionId"`
	StudentName   string    `json:"studentName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Grade         string    `json:"grade"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type inquiryListResponse struct {
	Items []inquiryResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}

type inquiryUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONTACTED RESOLVED"`
}

type statsResponse struct {
	InstitutionID    string         `json:"institutionId"`
	InstitutionName  string         `json:"institutionName"`
	CatalogRating    float64        `json:"catalogRating"`
	CatalogReviews   int            `json:"catalogReviews"`
	EduRankScore     *int           `json:"eduRankScore,omitempty"`
	SubmittedReviews int            `json:"submittedReviews"`
	SubmittedAverage float64        `json:"submittedAverage"`
	TotalReviews     int            `json:"totalReviews"`
	Inquiries        map[string]int `json:"inquiries"`
	TotalInquiries   int            `json:"totalInquiries"`
	PendingClaims    int            `json:"pendingClaims"`
}

func toClaimResponse(c publicdomain.Claim) claimResponse {
	return claimResponse{
		ID:              c.ID,
		Mode:            string(c.Mode),
		InstitutionID:   c.InstitutionID,
		InstitutionName: c.InstitutionName,
		City:            c.City,
		Type:            string(c.Type),
		ContactPerson:   c.ContactPerson,
		Position:        c.Position,
		OfficialEmail:   c.OfficialEmail,
		Phone:           c.Phone,
		Status:          string(c.Status),
		SubmittedAt:     c.SubmittedAt,
		DecidedAt:       c.DecidedAt,
	}
}

func toInquiryResponse(inq publicdomain.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:            inq.ID,
		InstitutionID: inq.InstitutionID,
		StudentName:   inq.StudentName,
		Email:         inq.Email,
		Phone:         inq.Phone,
		Grade:         inq.Grade,
		Message:       inq.Message,
		Status:        string(inq.Status),
		CreatedAt:     inq.CreatedAt,
		UpdatedAt:     inq.UpdatedAt,
	}
}

func toStatsResponse(s admindomain.InstitutionStats) statsResponse {
	inquiries := make(map[string]int, len(s.Inquiries))
	for status, n := range s.Inquiries {
		inquiries[string(status)] = n
	}
	return statsResponse{
		InstitutionID:    s.InstitutionID,
		InstitutionName:  s.InstitutionName,
		CatalogRating:    s.CatalogRating,
		CatalogReviews:   s.CatalogReviews,
		EduRankScore:     s.EduRankScore,
		SubmittedReviews: s.SubmittedReviews,
		SubmittedAverage: s.SubmittedAverage,
		TotalReviews:     s.TotalReviews(),
		Inquiries:        inquiries,
		TotalInquiries:   s.Inquiries.Total(),
		PendingClaims:    s.PendingClaims,
	}
}
