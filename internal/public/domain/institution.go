package domain

import (
	"errors"
	"fmt"
	"strings"
)

// InstitutionType classifies a listed institution.
type InstitutionType string

const (
	TypePreschool       InstitutionType = "PRESCHOOL"
	TypeSchool          InstitutionType = "SCHOOL"
	TypeCollege         InstitutionType = "COLLEGE"
	TypeUniversity      InstitutionType = "UNIVERSITY"
	TypeMontessori      InstitutionType = "MONTESSORI"
	TypeTechnicalSchool InstitutionType = "TECHNICAL_SCHOOL"
	TypeConsultancy     InstitutionType = "CONSULTANCY"
	TypeTrainingCenter  InstitutionType = "TRAINING_CENTER"
)

// InstitutionTypes lists every known type in display order.
var InstitutionTypes = []InstitutionType{
	TypePreschool,
	TypeSchool,
	TypeCollege,
	TypeUniversity,
	TypeMontessori,
	TypeTechnicalSchool,
	TypeConsultancy,
	TypeTrainingCenter,
}

// ParseType resolves a type name case-insensitively.
func ParseType(value string) (InstitutionType, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	for _, t := range InstitutionTypes {
		if string(t) == trimmed {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown institution type: %q", value)
}

// Tier is the listing plan. PREMIUM listings always sort ahead of FREE ones.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
)

// ParseTier resolves a tier name case-insensitively.
func ParseTier(value string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(TierFree):
		return TierFree, nil
	case string(TierPremium):
		return TierPremium, nil
	}
	return "", fmt.Errorf("unknown tier: %q", value)
}

// Institution is a listed school, college or consultancy.
type Institution struct {
	ID       string
	Slug     string
	Name     string
	Type     InstitutionType
	Tier     Tier
	Address  string
	City     string
	District string
	Province string

	Coordinates    *Coordinates
	GoogleMapsLink string

	// Fees is the annual estimate in NPR.
	Fees       int64
	FeeDetails *FeeDetails

	Features                  []string
	Affiliation               []string
	Programs                  []string
	Destinations              []string
	Services                  []string
	SafetyFeatures            []string
	ExtracurricularActivities []string

	MediumOfInstruction string
	StudentTeacherRatio string
	AverageClassSize    *int

	VisaSuccessRate *float64
	YearsInBusiness *int
	StudentsSent    *int
	ServiceFee      string

	Rating         float64
	Reviews        int
	IsVerified     bool
	EduRankScore   *int
	ScoreBreakdown ScoreBreakdown

	Image       string
	Logo        string
	Gallery     []string
	Description string
	FoundedYear *int
	Phone       string
	Email       string
	Website     string
	SocialLinks *SocialLinks
}

// FeeDetails is the itemised fee structure in NPR.
type FeeDetails struct {
	Admission       int64
	Monthly         int64
	Annual          int64
	Others          int64
	Transport       *int64
	Hostel          *int64
	SecurityDeposit *int64
	Amenities       *int64
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64
	Lng float64
}

// SocialLinks holds optional profile URLs.
type SocialLinks struct {
	Facebook  string
	Instagram string
	LinkedIn  string
}

// ScoreComponent is one labelled contribution to the EduRank score.
type ScoreComponent struct {
	Label  string
	Points int
}

// ScoreBreakdown keeps the components in display order.
type ScoreBreakdown []ScoreComponent

// Total sums every component.
func (b ScoreBreakdown) Total() int {
	total := 0
	for _, c := range b {
		total += c.Points
	}
	return total
}

// AnnualFee returns the itemised annual fee when present, else the estimate.
func (i Institution) AnnualFee() int64 {
	if i.FeeDetails != nil && i.FeeDetails.Annual != 0 {
		return i.FeeDetails.Annual
	}
	return i.Fees
}

// IsPremium reports whether the listing is on the paid tier.
func (i Institution) IsPremium() bool {
	return i.Tier == TierPremium
}

// Score returns the EduRank score or zero when unrated.
func (i Institution) Score() int {
	if i.EduRankScore == nil {
		return 0
	}
	return *i.EduRankScore
}

var (
	// ErrNotFound is returned by repositories when no record matches.
	ErrNotFound = errors.New("not found")

	ErrInstitutionNameRequired = errors.New("institution name is required")
	ErrNegativeFees            = errors.New("fees must not be negative")
	ErrRatingOutOfRange        = errors.New("rating must be between 0 and 5")
	ErrScoreOutOfRange         = errors.New("eduRankScore must be between 0 and 100")
)

// Validate checks the record invariants.
func (i Institution) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInstitutionNameRequired
	}
	if _, err := ParseType(string(i.Type)); err != nil {
		return err
	}
	if _, err := ParseTier(string(i.Tier)); err != nil {
		return err
	}
	if i.Fees < 0 {
		return ErrNegativeFees
	}
	if i.FeeDetails != nil && (i.FeeDetails.Annual < 0 || i.FeeDetails.Monthly < 0 || i.FeeDetails.Admission < 0) {
		return ErrNegativeFees
	}
	if i.Rating < 0 || i.Rating > 5 {
		return ErrRatingOutOfRange
	}
	if i.EduRankScore != nil && (*i.EduRankScore < 0 || *i.EduRankScore > 100) {
		return ErrScoreOutOfRange
	}
	return nil
}

// Slugify lowercases name and collapses every run of characters outside
// [a-z0-9] into a single hyphen, trimming hyphens at both ends.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
