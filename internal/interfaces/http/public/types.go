package public

import (
	"math"
	"time"

	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
	"github.com/edurank-nepal/api/internal/ranking"
)

type institutionResponse struct {
	ID              string              `json:"id"`
	Slug            string              `json:"slug"`
	Name            string              `json:"name"`
	Type            string              `json:"type"`
	Tier            string              `json:"tier"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	District        string              `json:"district,omitempty"`
	Province        string              `json:"province,omitempty"`
	Coordinates     *coordinatesPayload `json:"coordinates,omitempty"`
	GoogleMapsLink  string              `json:"googleMapsLink,omitempty"`
	Fees            int64               `json:"fees"`
	AnnualFee       int64               `json:"annualFee"`
	FeeDetails      *feeDetailsPayload  `json:"feeDetails,omitempty"`
	Features        []string            `json:"features"`
	Affiliation     []string            `json:"affiliation,omitempty"`
	Programs        []string            `json:"programs,omitempty"`
	Destinations    []string            `json:"destinations,omitempty"`
	Services        []string            `json:"services,omitempty"`
	SafetyFeatures  []string            `json:"safetyFeatures,omitempty"`
	Extracurricular []string            `json:"extracurricularActivities,omitempty"`
	Medium          string              `json:"mediumOfInstruction,omitempty"`
	StudentTeacher  string              `json:"studentTeacherRatio,omitempty"`
	ClassSize       *int                `json:"averageClassSize,omitempty"`
	VisaSuccess     *float64            `json:"visaSuccessRate,omitempty"`
	YearsInBiz      *int                `json:"yearsInBusiness,omitempty"`
	StudentsSent    *int                `json:"studentsSent,omitempty"`
	ServiceFee      string              `json:"serviceFee,omitempty"`
	Rating          float64             `json:"rating"`
	Reviews         int                 `json:"reviews"`
	IsVerified      bool                `json:"isVerified"`
	EduRankScore    *int                `json:"eduRankScore,omitempty"`
	ScoreBreakdown  []scoreComponent    `json:"scoreBreakdown,omitempty"`
	Image           string              `json:"image"`
	Logo            string              `json:"logo,omitempty"`
	Gallery         []string            `json:"gallery,omitempty"`
	Description     string              `json:"description"`
	FoundedYear     *int                `json:"foundedYear,omitempty"`
	Phone           string              `json:"phone,omitempty"`
	Email           string              `json:"email,omitempty"`
	Website         string              `json:"website,omitempty"`
	SocialLinks     *socialLinksPayload `json:"socialLinks,omitempty"`
}

type coordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type feeDetailsPayload struct {
	Admission       int64  `json:"admission"`
	Monthly         int64  `json:"monthly"`
	Annual          int64  `json:"annual"`
	Others          int64  `json:"others"`
	Transport       *int64 `json:"transport,omitempty"`
	Hostel          *int64 `json:"hostel,omitempty"`
	SecurityDeposit *int64 `json:"securityDeposit,omitempty"`
	Amenities       *int64 `json:"amenities,omitempty"`
}

type socialLinksPayload struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type scoreComponent struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type scoredInstitutionResponse struct {
	institutionResponse
	MatchScore int `json:"matchScore"`
}

type matchContribution struct {
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Points   float64 `json:"points"`
}

type institutionDetailResponse struct {
	institutionResponse
	MatchScore     int                 `json:"matchScore"`
	MatchBreakdown []matchContribution `json:"matchBreakdown"`
}

type searchResponse struct {
	Items []scoredInstitutionResponse `json:"items"`
	Page  int                         `json:"page"`
	Limit int                         `json:"limit"`
	Total int                         `json:"total"`
}

type listResponse struct {
	Items []institutionResponse `json:"items"`
	Total int                   `json:"total"`
}

type suggestionResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type"`
	City string `json:"city"`
}

type compareResponse struct {
	Items          []institutionResponse `json:"items"`
	BestRatingID   string                `json:"bestRatingId,omitempty"`
	LowestAnnualID string                `json:"lowestAnnualFeeId,omitempty"`
}

type optionsResponse struct {
	Types        []string `json:"types"`
	Facilities   []string `json:"facilities"`
	Affiliations []string `json:"affiliations"`
	Destinations []string `json:"destinations"`
	Programs     []string `json:"programs"`
	Sorts        []string `json:"sorts"`
	MaxBudget    int64    `json:"maxBudget"`
}

type reviewRequest struct {
	AuthorName string         `json:"authorName" validate:"max=120"`
	Ratings    map[string]int `json:"ratings" validate:"required,min=1,dive,gte=0,lte=10"`
	Comment    string         `json:"comment" validate:"max=4000"`
}

type reviewResponse struct {
	ID            string         `json:"id"`
	InstitutionID string         `json:"institutionId"`
	AuthorName    string         `json:"authorName"`
	Ratings       map[string]int `json:"ratings"`
	Average       float64        `json:"average"`
	Comment       string         `json:"comment,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type reviewListResponse struct {
	Items []reviewResponse `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

type inquiryRequest struct {
	StudentName string `json:"studentName" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=32"`
	Grade       string `json:"grade" validate:"required,max=80"`
	Message     string `json:"message" validate:"max=2000"`
}

type inquiryResponse struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institutionId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type claimRequest struct {
	Mode            string `json:"mode" validate:"required,oneof=CLAIM REGISTER"`
	InstitutionID   string `json:"institutionId" validate:"required_if=Mode CLAIM"`
	InstitutionName string `json:"institutionName" validate:"required_if=Mode REGISTER,max=200"`
	City            string `json:"city" validate:"required_if=Mode REGISTER,max=100"`
	Type            string `json:"type" validate:"required_if=Mode REGISTER"`
	ContactPerson   string `json:"contactPerson" validate:"required,max=120"`
	Position        string `json:"position" validate:"required,max=120"`
	OfficialEmail   string `json:"officialEmail" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=32"`
}

type claimResponse struct {
	ID              string    `json:"id"`
	Mode            string    `json:"mode"`
	InstitutionID   string    `json:"institutionId,omitempty"`
	InstitutionName string    `json:"institutionName"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func toInstitutionResponse(inst domain.Institution) institutionResponse {
	resp := institutionResponse{
		ID:              inst.ID,
		Slug:            inst.Slug,
		Name:            inst.Name,
		Type:            string(inst.Type),
		Tier:            string(inst.Tier),
		Address:         inst.Address,
		City:            inst.City,
		District:        inst.District,
		Province:        inst.Province,
		GoogleMapsLink:  inst.GoogleMapsLink,
		Fees:            inst.Fees,
		AnnualFee:       inst.AnnualFee(),
		Features:        nonNil(inst.Features),
		Affiliation:     inst.Affiliation,
		Programs:        inst.Programs,
		Destinations:    inst.Destinations,
		Services:        inst.Services,
		SafetyFeatures:  inst.SafetyFeatures,
		Extracurricular: inst.ExtracurricularActivities,
		Medium:          inst.MediumOfInstruction,
		StudentTeacher:  inst.StudentTeacherRatio,
		ClassSize:       inst.AverageClassSize,
		VisaSuccess:     inst.VisaSuccessRate,
		YearsInBiz:      inst.YearsInBusiness,
		StudentsSent:    inst.StudentsSent,
		ServiceFee:      inst.ServiceFee,
		Rating:          inst.Rating,
		Reviews:         inst.Reviews,
		IsVerified:      inst.IsVerified,
		EduRankScore:    inst.EduRankScore,
		Image:           inst.Image,
		Logo:            inst.Logo,
		Gallery:         inst.Gallery,
		Description:     inst.Description,
		FoundedYear:     inst.FoundedYear,
		Phone:           inst.Phone,
		Email:           inst.Email,
		Website:         inst.Website,
	}
	if c := inst.Coordinates; c != nil {
		resp.Coordinates = &coordinatesPayload{Lat: c.Lat, Lng: c.Lng}
	}
	if fd := inst.FeeDetails; fd != nil {
		resp.FeeDetails = &feeDetailsPayload{
			Admission:       fd.Admission,
			Monthly:         fd.Monthly,
			Annual:          fd.Annual,
			Others:          fd.Others,
			Transport:       fd.Transport,
			Hostel:          fd.Hostel,
			SecurityDeposit: fd.SecurityDeposit,
			Amenities:       fd.Amenities,
		}
	}
	if sl := inst.SocialLinks; sl != nil {
		resp.SocialLinks = &socialLinksPayload{Facebook: sl.Facebook, Instagram: sl.Instagram, LinkedIn: sl.LinkedIn}
	}
	for _, c := range inst.ScoreBreakdown {
		resp.ScoreBreakdown = append(resp.ScoreBreakdown, scoreComponent{Label: c.Label, Points: c.Points})
	}
	return resp
}

func toInstitutionList(list []domain.Institution) []institutionResponse {
	items := make([]institutionResponse, 0, len(list))
	for _, inst := range list {
		items = append(items, toInstitutionResponse(inst))
	}
	return items
}

func toSearchResponse(res *publicapp.SearchResult) searchResponse {
	items := make([]scoredInstitutionResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, scoredInstitutionResponse{
			institutionResponse: toInstitutionResponse(item.Institution),
			MatchScore:          item.MatchScore,
		})
	}
	return searchResponse{Items: items, Page: res.Page, Limit: res.Limit, Total: res.Total}
}

func toDetailResponse(inst domain.Institution, filters ranking.FilterState) institutionDetailResponse {
	contributions := ranking.Breakdown(inst, filters)
	breakdown := make([]matchContribution, 0, len(contributions))
	for _, c := range contributions {
		breakdown = append(breakdown, matchContribution{
			Category: string(c.Category),
			Weight:   c.Weight,
			Points:   math.Round(c.Points*100) / 100,
		})
	}
	return institutionDetailResponse{
		institutionResponse: toInstitutionResponse(inst),
		MatchScore:          ranking.CalculateMatchScore(inst, filters),
		MatchBreakdown:      breakdown,
	}
}

func toSuggestion(inst domain.Institution) suggestionResponse {
	return suggestionResponse{ID: inst.ID, Slug: inst.Slug, Name: inst.Name, Type: string(inst.Type), City: inst.City}
}

func toOptionsResponse(opts ranking.Options) optionsResponse {
	types := make([]string, 0, len(opts.Types))
	for _, t := range opts.Types {
		types = append(types, string(t))
	}
	sorts := make([]string, 0, len(opts.Sorts))
	for _, s := range opts.Sorts {
		sorts = append(sorts, string(s))
	}
	return optionsResponse{
		Types:        types,
		Facilities:   opts.Facilities,
		Affiliations: opts.Affiliations,
		Destinations: opts.Destinations,
		Programs:     opts.Programs,
		Sorts:        sorts,
		MaxBudget:    opts.MaxBudget,
	}
}

func toReviewResponse(review domain.Review) reviewResponse {
	ratings := make(map[string]int, len(review.Ratings))
	for k, v := range review.Ratings {
		ratings[string(k)] = v
	}
	return reviewResponse{
		ID:            review.ID,
		InstitutionID: review.InstitutionID,
		AuthorName:    review.AuthorName,
		Ratings:       ratings,
		Average:       review.Average(),
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
