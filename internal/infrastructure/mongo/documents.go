package mongo

import (
	"time"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// InstitutionDocument is the catalog schema in MongoDB.
type InstitutionDocument struct {
	ID             string               `bson:"_id"`
	Slug           string               `bson:"slug"`
	Name           string               `bson:"name"`
	Type           string               `bson:"type"`
	Tier           string               `bson:"tier"`
	Address        string               `bson:"address,omitempty"`
	City           string               `bson:"city,omitempty"`
	District       string               `bson:"district,omitempty"`
	Province       string               `bson:"province,omitempty"`
	Coordinates    *CoordinatesDocument `bson:"coordinates,omitempty"`
	GoogleMapsLink string               `bson:"googleMapsLink,omitempty"`

	Fees       int64               `bson:"fees"`
	FeeDetails *FeeDetailsDocument `bson:"feeDetails,omitempty"`

	Features                  []string `bson:"features,omitempty"`
	Affiliation               []string `bson:"affiliation,omitempty"`
	Programs                  []string `bson:"programs,omitempty"`
	Destinations              []string `bson:"destinations,omitempty"`
	Services                  []string `bson:"services,omitempty"`
	SafetyFeatures            []string `bson:"safetyFeatures,omitempty"`
	ExtracurricularActivities []string `bson:"extracurricularActivities,omitempty"`

	MediumOfInstruction string `bson:"mediumOfInstruction,omitempty"`
	StudentTeacherRatio string `bson:"studentTeacherRatio,omitempty"`
	AverageClassSize    *int   `bson:"averageClassSize,omitempty"`

	VisaSuccessRate *float64 `bson:"visaSuccessRate,omitempty"`
	YearsInBusiness *int     `bson:"yearsInBusiness,omitempty"`
	StudentsSent    *int     `bson:"studentsSent,omitempty"`
	ServiceFee      string   `bson:"serviceFee,omitempty"`

	Rating         float64                  `bson:"rating"`
	Reviews        int                      `bson:"reviews"`
	IsVerified     bool                     `bson:"isVerified"`
	EduRankScore   *int                     `bson:"eduRankScore,omitempty"`
	ScoreBreakdown []ScoreComponentDocument `bson:"scoreBreakdown,omitempty"`

	Image       string               `bson:"image,omitempty"`
	Logo        string               `bson:"logo,omitempty"`
	Gallery     []string             `bson:"gallery,omitempty"`
	Description string               `bson:"description,omitempty"`
	FoundedYear *int                 `bson:"foundedYear,omitempty"`
	Phone       string               `bson:"phone,omitempty"`
	Email       string               `bson:"email,omitempty"`
	Website     string               `bson:"website,omitempty"`
	SocialLinks *SocialLinksDocument `bson:"socialLinks,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt"`
}

type CoordinatesDocument struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type FeeDetailsDocument struct {
	Admission       int64  `bson:"admission"`
	Monthly         int64  `bson:"monthly"`
	Annual          int64  `bson:"annual"`
	Others          int64  `bson:"others"`
	Transport       *int64 `bson:"transport,omitempty"`
	Hostel          *int64 `bson:"hostel,omitempty"`
	SecurityDeposit *int64 `bson:"securityDeposit,omitempty"`
	Amenities       *int64 `bson:"amenities,omitempty"`
}

type SocialLinksDocument struct {
	Facebook  string `bson:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty"`
}

// ScoreComponentDocument keeps one breakdown entry; order is preserved by the array.
type ScoreComponentDocument struct {
	Label  string `bson:"label"`
	Points int    `bson:"points"`
}

// ReviewDocument is a submitted review. Average is stored for aggregation.
type ReviewDocument struct {
	ID            string         `bson:"_id"`
	InstitutionID string         `bson:"institutionId"`
	AuthorName    string         `bson:"authorName"`
	Ratings       map[string]int `bson:"ratings"`
	Average       float64        `bson:"average"`
	Comment       string         `bson:"comment,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt"`
}

// InquiryDocument is an admission inquiry.
type InquiryDocument struct {
	ID            string    `bson:"_id"`
	InstitutionID string    `bson:"institutionId"`
	StudentName   string    `bson:"studentName"`
	Email         string    `bson:"email"`
	Phone         string    `bson:"phone"`
	Grade         string    `bson:"grade"`
	Message       string    `bson:"message,omitempty"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// ClaimDocument is a claim or registration request.
type ClaimDocument struct {
	ID              string     `bson:"_id"`
	Mode            string     `bson:"mode"`
	InstitutionID   string     `bson:"institutionId,omitempty"`
	InstitutionName string     `bson:"institutionName"`
	City            string     `bson:"city,omitempty"`
	Type            string     `bson:"type,omitempty"`
	ContactPerson   string     `bson:"contactPerson"`
	Position        string     `bson:"position"`
	OfficialEmail   string     `bson:"officialEmail"`
	Phone           string     `bson:"phone"`
	Status          string     `bson:"status"`
	SubmittedAt     time.Time  `bson:"submittedAt"`
	DecidedAt       *time.Time `bson:"decidedAt,omitempty"`
}

func toInstitutionDocument(inst domain.Institution, now time.Time) InstitutionDocument {
	doc := InstitutionDocument{
		ID:                        inst.ID,
		Slug:                      inst.Slug,
		Name:                      inst.Name,
		Type:                      string(inst.Type),
		Tier:                      string(inst.Tier),
		Address:                   inst.Address,
		City:                      inst.City,
		District:                  inst.District,
		Province:                  inst.Province,
		GoogleMapsLink:            inst.GoogleMapsLink,
		Fees:                      inst.Fees,
		Features:                  inst.Features,
		Affiliation:               inst.Affiliation,
		Programs:                  inst.Programs,
		Destinations:              inst.Destinations,
		Services:                  inst.Services,
		SafetyFeatures:            inst.SafetyFeatures,
		ExtracurricularActivities: inst.ExtracurricularActivities,
		MediumOfInstruction:       inst.MediumOfInstruction,
		StudentTeacherRatio:       inst.StudentTeacherRatio,
		AverageClassSize:          inst.AverageClassSize,
		VisaSuccessRate:           inst.VisaSuccessRate,
		YearsInBusiness:           inst.YearsInBusiness,
		StudentsSent:              inst.StudentsSent,
		ServiceFee:                inst.ServiceFee,
		Rating:                    inst.Rating,
		Reviews:                   inst.Reviews,
		IsVerified:                inst.IsVerified,
		EduRankScore:              inst.EduRankScore,
		Image:                     inst.Image,
		Logo:                      inst.Logo,
		Gallery:                   inst.Gallery,
		Description:               inst.Description,
		FoundedYear:               inst.FoundedYear,
		Phone:                     inst.Phone,
		Email:                     inst.Email,
		Website:                   inst.Website,
		UpdatedAt:                 now,
	}
	if inst.Coordinates != nil {
		doc.Coordinates = &CoordinatesDocument{Lat: inst.Coordinates.Lat, Lng: inst.Coordinates.Lng}
	}
	if fd := inst.FeeDetails; fd != nil {
		doc.FeeDetails = &FeeDetailsDocument{
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
		doc.SocialLinks = &SocialLinksDocument{Facebook: sl.Facebook, Instagram: sl.Instagram, LinkedIn: sl.LinkedIn}
	}
	for _, c := range inst.ScoreBreakdown {
		doc.ScoreBreakdown = append(doc.ScoreBreakdown, ScoreComponentDocument{Label: c.Label, Points: c.Points})
	}
	return doc
}

func mapInstitutionDocument(doc InstitutionDocument) domain.Institution {
	inst := domain.Institution{
		ID:                        doc.ID,
		Slug:                      doc.Slug,
		Name:                      doc.Name,
		Type:                      domain.InstitutionType(doc.Type),
		Tier:                      domain.Tier(doc.Tier),
		Address:                   doc.Address,
		City:                      doc.City,
		District:                  doc.District,
		Province:                  doc.Province,
		GoogleMapsLink:            doc.GoogleMapsLink,
		Fees:                      doc.Fees,
		Features:                  doc.Features,
		Affiliation:               doc.Affiliation,
		Programs:                  doc.Programs,
		Destinations:              doc.Destinations,
		Services:                  doc.Services,
		SafetyFeatures:            doc.SafetyFeatures,
		ExtracurricularActivities: doc.ExtracurricularActivities,
		MediumOfInstruction:       doc.MediumOfInstruction,
		StudentTeacherRatio:       doc.StudentTeacherRatio,
		AverageClassSize:          doc.AverageClassSize,
		VisaSuccessRate:           doc.VisaSuccessRate,
		YearsInBusiness:           doc.YearsInBusiness,
		StudentsSent:              doc.StudentsSent,
		ServiceFee:                doc.ServiceFee,
		Rating:                    doc.Rating,
		Reviews:                   doc.Reviews,
		IsVerified:                doc.IsVerified,
		EduRankScore:              doc.EduRankScore,
		Image:                     doc.Image,
		Logo:                      doc.Logo,
		Gallery:                   doc.Gallery,
		Description:               doc.Description,
		FoundedYear:               doc.FoundedYear,
		Phone:                     doc.Phone,
		Email:                     doc.Email,
		Website:                   doc.Website,
	}
	if doc.Coordinates != nil {
		inst.Coordinates = &domain.Coordinates{Lat: doc.Coordinates.Lat, Lng: doc.Coordinates.Lng}
	}
	if fd := doc.FeeDetails; fd != nil {
		inst.FeeDetails = &domain.FeeDetails{
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
	if sl := doc.SocialLinks; sl != nil {
		inst.SocialLinks = &domain.SocialLinks{Facebook: sl.Facebook, Instagram: sl.Instagram, LinkedIn: sl.LinkedIn}
	}
	for _, c := range doc.ScoreBreakdown {
		inst.ScoreBreakdown = append(inst.ScoreBreakdown, domain.ScoreComponent{Label: c.Label, Points: c.Points})
	}
	return inst
}

func toReviewDocument(review domain.Review) ReviewDocument {
	ratings := make(map[string]int, len(review.Ratings))
	for k, v := range review.Ratings {
		ratings[string(k)] = v
	}
	return ReviewDocument{
		ID:            review.ID,
		InstitutionID: review.InstitutionID,
		AuthorName:    review.AuthorName,
		Ratings:       ratings,
		Average:       review.Average(),
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	ratings := make(map[domain.ReviewCategory]int, len(doc.Ratings))
	for k, v := range doc.Ratings {
		ratings[domain.ReviewCategory(k)] = v
	}
	return domain.Review{
		ID:            doc.ID,
		InstitutionID: doc.InstitutionID,
		AuthorName:    doc.AuthorName,
		Ratings:       ratings,
		Comment:       doc.Comment,
		CreatedAt:     doc.CreatedAt,
	}
}

func toInquiryDocument(inquiry domain.Inquiry) InquiryDocument {
	return InquiryDocument{
		ID:            inquiry.ID,
		InstitutionID: inquiry.InstitutionID,
		StudentName:   inquiry.StudentName,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Grade:         inquiry.Grade,
		Message:       inquiry.Message,
		Status:        string(inquiry.Status),
		CreatedAt:     inquiry.CreatedAt,
		UpdatedAt:     inquiry.UpdatedAt,
	}
}

func mapInquiryDocument(doc InquiryDocument) domain.Inquiry {
	return domain.Inquiry{
		ID:            doc.ID,
		InstitutionID: doc.InstitutionID,
		StudentName:   doc.StudentName,
		Email:         doc.Email,
		Phone:         doc.Phone,
		Grade:         doc.Grade,
		Message:       doc.Message,
		Status:        domain.InquiryStatus(doc.Status),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func toClaimDocument(claim domain.Claim) ClaimDocument {
	return ClaimDocument{
		ID:              claim.ID,
		Mode:            string(claim.Mode),
		InstitutionID:   claim.InstitutionID,
		InstitutionName: claim.InstitutionName,
		City:            claim.City,
		Type:            string(claim.Type),
		ContactPerson:   claim.ContactPerson,
		Position:        claim.Position,
		OfficialEmail:   claim.OfficialEmail,
		Phone:           claim.Phone,
		Status:          string(claim.Status),
		SubmittedAt:     claim.SubmittedAt,
		DecidedAt:       claim.DecidedAt,
	}
}

func mapClaimDocument(doc ClaimDocument) domain.Claim {
	return domain.Claim{
		ID:              doc.ID,
		Mode:            domain.ClaimMode(doc.Mode),
		InstitutionID:   doc.InstitutionID,
		InstitutionName: doc.InstitutionName,
		City:            doc.City,
		Type:            domain.InstitutionType(doc.Type),
		ContactPerson:   doc.ContactPerson,
		Position:        doc.Position,
		OfficialEmail:   doc.OfficialEmail,
		Phone:           doc.Phone,
		Status:          domain.ClaimStatus(doc.Status),
		SubmittedAt:     doc.SubmittedAt,
		DecidedAt:       doc.DecidedAt,
	}
}
