package ranking

import (
	"math"
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// Category weights. They sum to 1.0.
const (
	WeightBudget     = 0.25
	WeightLocation   = 0.20
	WeightFacilities = 0.15
	WeightAcademics  = 0.15
	WeightSafety     = 0.10
	WeightReviews    = 0.10
	WeightHolistic   = 0.05
)

// Category names one term of the match score.
type Category string

const (
	CategoryBudget     Category = "budget"
	CategoryLocation   Category = "location"
	CategoryFacilities Category = "facilities"
	CategoryAcademics  Category = "academics"
	CategorySafety     Category = "safety"
	CategoryReviews    Category = "reviews"
	CategoryHolistic   Category = "holistic"
)

// Contribution is the points one category adds to the unrounded score.
type Contribution struct {
	Category Category
	Weight   float64
	Points   float64
}

// Breakdown returns every category contribution in fixed order. The points
// sum to the unrounded match score.
func Breakdown(inst domain.Institution, f FilterState) []Contribution {
	academics := (Overlap(f.Affiliation, inst.Affiliation) + Overlap(f.Programs, inst.Programs)) / 2

	return []Contribution{
		{CategoryBudget, WeightBudget, WeightBudget * 100 * budgetFit(inst.AnnualFee(), f.MinBudget, f.MaxBudget)},
		{CategoryLocation, WeightLocation, WeightLocation * 100 * locationFit(inst.City, f.City)},
		{CategoryFacilities, WeightFacilities, WeightFacilities * 100 * Overlap(f.Facilities, inst.Features)},
		{CategoryAcademics, WeightAcademics, WeightAcademics * 100 * academics},
		{CategorySafety, WeightSafety, WeightSafety * 100 * Overlap(f.SafetyFeatures, inst.SafetyFeatures)},
		{CategoryReviews, WeightReviews, WeightReviews * (inst.Rating / 5 * 100)},
		{CategoryHolistic, WeightHolistic, WeightHolistic * 100},
	}
}

// CalculateMatchScore blends budget fit, location, facility, academic and
// safety overlap, rating and a constant holistic term into 0..100.
func CalculateMatchScore(inst domain.Institution, f FilterState) int {
	total := 0.0
	for _, c := range Breakdown(inst, f) {
		total += c.Points
	}
	score := int(math.Round(total))
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

// budgetFit is 1 inside [min,max], 0.5 inside [0.8*min, 1.2*max] and 0 otherwise.
// Both bounds are inclusive. The widened range is compared in integers so
// that a fee of exactly 1.2*max is not lost to float rounding.
func budgetFit(fee, min, max int64) float64 {
	if fee >= min && fee <= max {
		return 1
	}
	if fee*5 >= min*4 && fee*5 <= max*6 {
		return 0.5
	}
	return 0
}

func locationFit(instCity, filterCity string) float64 {
	filterCity = strings.TrimSpace(filterCity)
	if filterCity == "" || strings.EqualFold(strings.TrimSpace(instCity), filterCity) {
		return 1
	}
	return 0
}
