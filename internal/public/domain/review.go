package domain

import (
	"math"
	"time"
)

// ReviewCategory is one of the fixed aspects parents rate.
type ReviewCategory string

const (
	CategoryAcademic       ReviewCategory = "academic"
	CategoryTeaching       ReviewCategory = "teaching"
	CategoryInfrastructure ReviewCategory = "infrastructure"
	CategorySafety         ReviewCategory = "safety"
	CategoryExtra          ReviewCategory = "extra"
	CategoryLifestyle      ReviewCategory = "lifestyle"
	CategoryValue          ReviewCategory = "value"
	CategoryCommunication  ReviewCategory = "communication"
	CategoryTransport      ReviewCategory = "transport"
	CategoryHappiness      ReviewCategory = "happiness"
)

// ReviewCategories lists the categories in form order.
var ReviewCategories = []ReviewCategory{
	CategoryAcademic,
	CategoryTeaching,
	CategoryInfrastructure,
	CategorySafety,
	CategoryExtra,
	CategoryLifestyle,
	CategoryValue,
	CategoryCommunication,
	CategoryTransport,
	CategoryHappiness,
}

const (
	MinCategoryRating = 0
	MaxCategoryRating = 10
)

// Review is a submitted parent or student review.
type Review struct {
	ID            string
	InstitutionID string
	AuthorName    string
	Ratings       map[ReviewCategory]int
	Comment       string
	CreatedAt     time.Time
}

// Average returns the mean of the supplied category ratings rounded to one decimal.
func (r Review) Average() float64 {
	if len(r.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r.Ratings {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(r.Ratings))*10) / 10
}

// ValidateRatings rejects unknown categories and out-of-range values.
func ValidateRatings(ratings map[ReviewCategory]int) error {
	if len(ratings) == 0 {
		return Invalid("ratings", "at least one category rating is required")
	}
	for category, value := range ratings {
		if !isReviewCategory(category) {
			return Invalid("ratings", "unknown review category: %q", category)
		}
		if value < MinCategoryRating || value > MaxCategoryRating {
			return Invalid("ratings", "%s rating must be between %d and %d", category, MinCategoryRating, MaxCategoryRating)
		}
	}
	return nil
}

func isReviewCategory(c ReviewCategory) bool {
	for _, known := range ReviewCategories {
		if known == c {
			return true
		}
	}
	return false
}
