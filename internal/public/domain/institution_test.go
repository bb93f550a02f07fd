package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"St. Mary's School!!":          "st-mary-s-school",
		"Budhanilkantha School":        "budhanilkantha-school",
		"  --Kathmandu   University-- ": "kathmandu-university",
		"ABC 123":                      "abc-123",
		"!!!":                          "",
		"Rato Bangala / Kindergarten":  "rato-bangala-kindergarten",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestInstitution_AnnualFee(t *testing.T) {
	inst := Institution{Fees: 120000}
	assert.Equal(t, int64(120000), inst.AnnualFee())

	inst.FeeDetails = &FeeDetails{Annual: 0, Monthly: 9000}
	assert.Equal(t, int64(120000), inst.AnnualFee(), "zero annual falls back to fees")

	inst.FeeDetails.Annual = 108000
	assert.Equal(t, int64(108000), inst.AnnualFee())
}

func TestInstitution_Validate(t *testing.T) {
	score := 88
	valid := Institution{Name: "Test", Type: TypeSchool, Tier: TierFree, Rating: 4.5, EduRankScore: &score}
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = " "
	assert.ErrorIs(t, noName.Validate(), ErrInstitutionNameRequired)

	negative := valid
	negative.Fees = -1
	assert.ErrorIs(t, negative.Validate(), ErrNegativeFees)

	highRating := valid
	highRating.Rating = 5.1
	assert.ErrorIs(t, highRating.Validate(), ErrRatingOutOfRange)

	overScore := 101
	badScore := valid
	badScore.EduRankScore = &overScore
	assert.ErrorIs(t, badScore.Validate(), ErrScoreOutOfRange)

	badType := valid
	badType.Type = "KINDERGARTEN"
	assert.Error(t, badType.Validate())
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" consultancy ")
	require.NoError(t, err)
	assert.Equal(t, TypeConsultancy, got)

	_, err = ParseType("ALL")
	assert.Error(t, err)
}

func TestReview_Average(t *testing.T) {
	r := Review{Ratings: map[ReviewCategory]int{CategoryAcademic: 8, CategoryTeaching: 7, CategorySafety: 10}}
	assert.InDelta(t, 8.3, r.Average(), 1e-9)
	assert.Zero(t, Review{}.Average())
}

func TestValidateRatings(t *testing.T) {
	assert.NoError(t, ValidateRatings(map[ReviewCategory]int{CategoryValue: 0, CategoryHappiness: 10}))
	assert.Error(t, ValidateRatings(nil))
	assert.Error(t, ValidateRatings(map[ReviewCategory]int{CategoryValue: 11}))
	assert.Error(t, ValidateRatings(map[ReviewCategory]int{"parking": 5}))
}

func TestScoreBreakdown_Total(t *testing.T) {
	b := ScoreBreakdown{{Label: "Academic Quality", Points: 40}, {Label: "Facilities", Points: 20}, {Label: "Transparency", Points: 10}}
	assert.Equal(t, 70, b.Total())
}
