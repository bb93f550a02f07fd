package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edurank-nepal/api/internal/public/domain"
)

func TestParseRows_SampleRow(t *testing.T) {
	data := []byte(`[["Test School","Kathmandu, Bagmati","NPR 5,000","NPR 10,000","NEB, Cambridge","Library, Labs","—","01-000","desc"]]`)

	list, err := ParseRows(data)
	require.NoError(t, err)
	require.Len(t, list, 1)

	want := domain.Institution{
		ID:      "dynamic-0",
		Slug:    "test-school",
		Name:    "Test School",
		Type:    domain.TypeSchool,
		Tier:    domain.TierFree,
		Address: "Kathmandu, Bagmati",
		City:    "Bagmati",
		Fees:    60000,
		FeeDetails: &domain.FeeDetails{
			Admission: 10000,
			Monthly:   5000,
			Annual:    60000,
		},
		Features:    []string{"Library", "Labs"},
		Affiliation: []string{"NEB", "Cambridge"},
		IsVerified:  true,
		Image:       defaultSchoolImage,
		Phone:       "01-000",
		Description: "desc",
	}
	if diff := cmp.Diff(want, list[0]); diff != "" {
		t.Errorf("parsed row mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, list[0].Website)
	assert.Nil(t, list[0].EduRankScore)
}

func TestParseRows_Defaults(t *testing.T) {
	data := []byte(`[
		["No Fees School", "", "", null, "", "", "https://nofees.edu.np"],
		["", "Lalitpur", "NPR 1,000"],
		["Numeric School", "Patan, Lalitpur", 4500, "abc", "NEB,,", " Bus ,", "—", 9841000000]
	]`)

	list, err := ParseRows(data)
	require.NoError(t, err)
	require.Len(t, list, 2, "rows without a name are skipped")

	first := list[0]
	assert.Equal(t, "dynamic-0", first.ID)
	assert.Equal(t, "Kathmandu", first.City)
	assert.Zero(t, first.Fees)
	assert.Zero(t, first.FeeDetails.Admission)
	assert.Nil(t, first.Features)
	assert.Equal(t, "https://nofees.edu.np", first.Website)

	second := list[1]
	assert.Equal(t, "dynamic-2", second.ID)
	assert.Equal(t, "Lalitpur", second.City)
	assert.Equal(t, int64(54000), second.Fees)
	assert.Zero(t, second.FeeDetails.Admission)
	assert.Equal(t, []string{"NEB"}, second.Affiliation)
	assert.Equal(t, []string{"Bus"}, second.Features)
	assert.Equal(t, "9841000000", second.Phone)
}

func TestParseRows_DuplicateSlugs(t *testing.T) {
	data := []byte(`[["Sunrise School","A"],["Sunrise School","B"],["Sunrise  School!","C"]]`)
	list, err := ParseRows(data)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "sunrise-school", list[0].Slug)
	assert.Equal(t, "sunrise-school-2", list[1].Slug)
	assert.Equal(t, "sunrise-school-3", list[2].Slug)
}

func TestParseRows_GeneratedSlugNeverRepeats(t *testing.T) {
	data := []byte(`[["Alpha School","A"],["Alpha School","B"],["Alpha School 2","C"],["Alpha School","D"]]`)
	list, err := ParseRows(data)
	require.NoError(t, err)
	require.Len(t, list, 4)
	got := []string{list[0].Slug, list[1].Slug, list[2].Slug, list[3].Slug}
	assert.Equal(t, []string{"alpha-school", "alpha-school-2", "alpha-school-2-2", "alpha-school-3"}, got)
}

func TestMerge_RenamesAroundStaticAndParsedSlugs(t *testing.T) {
	static := []domain.Institution{{ID: "c1", Slug: "x", Name: "X", Type: domain.TypeConsultancy}}
	parsed := []domain.Institution{
		{ID: "dynamic-0", Slug: "x", Name: "X", Type: domain.TypeSchool},
		{ID: "dynamic-1", Slug: "x-2", Name: "X 2", Type: domain.TypeSchool},
	}

	merged := Merge(parsed, static)
	require.Len(t, merged, 3)
	slugs := map[string]string{}
	for _, inst := range merged {
		prev, dup := slugs[inst.Slug]
		assert.False(t, dup, "slug %s used by %s and %s", inst.Slug, prev, inst.ID)
		slugs[inst.Slug] = inst.ID
	}
	assert.Equal(t, "c1", slugs["x"])
	assert.Equal(t, "dynamic-0", slugs["x-2"])
	assert.Equal(t, "dynamic-1", slugs["x-2-2"])
}

func TestParseRows_Malformed(t *testing.T) {
	for _, input := range []string{`{}`, `not json`, `[{"name":"x"}]`, `[["ok", {"nested": true}]]`} {
		_, err := ParseRows([]byte(input))
		assert.Error(t, err, "input %s", input)
	}
}

func TestParseFee(t *testing.T) {
	assert.Equal(t, int64(5000), parseFee("NPR 5,000"))
	assert.Equal(t, int64(0), parseFee(""))
	assert.Equal(t, int64(0), parseFee("N/A"))
	assert.Equal(t, int64(0), parseFee("99999999999999999999999"))
}

func TestStatic(t *testing.T) {
	list := Static()
	require.NotEmpty(t, list)

	slugs := make(map[string]struct{}, len(list))
	for _, inst := range list {
		require.NoError(t, inst.Validate(), inst.Name)
		assert.NotEmpty(t, inst.Slug)
		_, dup := slugs[inst.Slug]
		assert.False(t, dup, "duplicate slug %s", inst.Slug)
		slugs[inst.Slug] = struct{}{}
		if inst.ScoreBreakdown != nil {
			assert.LessOrEqual(t, inst.ScoreBreakdown.Total(), 100)
		}
	}

	list[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Static()[0].Name, "Static returns a fresh copy")
}
