package mongo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/public/domain"
)

func TestInstitutionDocument_PreservesCatalogEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, inst := range catalog.Static() {
		doc := toInstitutionDocument(inst, now)
		assert.Equal(t, now, doc.UpdatedAt)
		if diff := cmp.Diff(inst, mapInstitutionDocument(doc)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", inst.ID, diff)
		}
	}
}

func TestInstitutionDocument_BSONShape(t *testing.T) {
	score := 90
	inst := domain.Institution{
		ID: "x", Slug: "x-school", Name: "X School", Type: domain.TypeSchool, Tier: domain.TierFree,
		EduRankScore: &score,
		FeeDetails:   &domain.FeeDetails{Monthly: 1000, Annual: 12000},
	}
	data, err := bson.Marshal(toInstitutionDocument(inst, time.Now()))
	assert.NoError(t, err)
	raw := bson.Raw(data)

	assert.Equal(t, "x", raw.Lookup("_id").StringValue())
	assert.Equal(t, int32(90), raw.Lookup("eduRankScore").Int32())
	assert.Equal(t, int64(12000), raw.Lookup("feeDetails", "annual").Int64())
	_, err = raw.LookupErr("coordinates")
	assert.Error(t, err)
	_, err = raw.LookupErr("features")
	assert.Error(t, err)
}

func TestReviewDocument_StoresAverage(t *testing.T) {
	review := domain.Review{
		ID: "r1", InstitutionID: "a",
		Ratings: map[domain.ReviewCategory]int{domain.CategoryAcademic: 9, domain.CategoryTeaching: 8, domain.CategorySafety: 8},
	}
	doc := toReviewDocument(review)
	assert.Equal(t, 8.3, doc.Average)
	assert.Equal(t, 9, doc.Ratings["academic"])
	assert.Equal(t, review, mapReviewDocument(doc))
}

func TestClaimAndInquiryDocuments(t *testing.T) {
	decided := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	claim := domain.Claim{ID: "REF-1", Mode: domain.RegisterNew, InstitutionName: "New", Type: domain.TypeCollege,
		Status: domain.ClaimApproved, DecidedAt: &decided}
	assert.Equal(t, claim, mapClaimDocument(toClaimDocument(claim)))

	inquiry := domain.Inquiry{ID: "q1", InstitutionID: "a", StudentName: "Sita", Status: domain.InquiryContacted}
	assert.Equal(t, inquiry, mapInquiryDocument(toInquiryDocument(inquiry)))
}

func TestInquiryFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, inquiryFilter(adminapp.InquiryFilter{}))

	f := inquiryFilter(adminapp.InquiryFilter{InstitutionID: " a ", Status: domain.InquiryPending, Term: "grade 1+"})
	assert.Equal(t, "a", f["institutionId"])
	assert.Equal(t, "PENDING", f["status"])
	or, ok := f["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)
	assert.Equal(t, bson.M{"studentName": primitive.Regex{Pattern: `grade 1\+`, Options: "i"}}, or[0])
}

func TestClaimFilter(t *testing.T) {
	assert.Equal(t, bson.M{"status": "PENDING", "institutionId": "a"},
		claimFilter(adminapp.ClaimFilter{Status: domain.ClaimPending, InstitutionID: "a"}))
}

func TestPageOptions(t *testing.T) {
	opts := pageOptions("createdAt", adminapp.Paging{Page: 3, Limit: 10}.Offset(), 10)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)

	huge := adminapp.Paging{Page: 461168601842738792, Limit: 20}
	opts = pageOptions("createdAt", huge.Offset(), huge.Limit)
	assert.Positive(t, *opts.Skip, "skip saturates instead of wrapping negative")

	opts = pageOptions("createdAt", 0, 0)
	assert.Nil(t, opts.Limit)
	assert.Nil(t, opts.Skip)
}

func TestIndexModels(t *testing.T) {
	models := indexModels(Collections{Institutions: "institutions", Reviews: "reviews", Inquiries: "inquiries", Claims: "claims"})
	assert.Len(t, models, 4)
	slug := models["institutions"][0]
	assert.True(t, *slug.Options.Unique)
}
