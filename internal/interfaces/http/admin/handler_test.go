package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminapp "github.com/edurank-nepal/api/internal/admin/application"
	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/infrastructure/memory"
	"github.com/edurank-nepal/api/internal/interfaces/http/admin"
	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	"github.com/edurank-nepal/api/internal/public/domain"
)

type fixture struct {
	router    http.Handler
	claims    *memory.ClaimRepository
	inquiries *memory.InquiryRepository
	reviews   *memory.ReviewRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	score := 82
	store := catalog.NewStaticStore([]domain.Institution{
		{ID: "i1", Slug: "sunrise-academy", Name: "Sunrise Academy", Type: domain.TypeSchool, Tier: domain.TierFree,
			City: "Kathmandu", Rating: 4.5, Reviews: 10, EduRankScore: &score},
	})
	f := &fixture{
		claims:    memory.NewClaimRepository(),
		inquiries: memory.NewInquiryRepository(),
		reviews:   memory.NewReviewRepository(),
	}

	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.claims.Create(ctx, &domain.Claim{ID: "REF-1", Mode: domain.ClaimExisting, InstitutionID: "i1",
		InstitutionName: "Sunrise Academy", Status: domain.ClaimPending, SubmittedAt: at}))
	require.NoError(t, f.inquiries.Create(ctx, &domain.Inquiry{ID: "q1", InstitutionID: "i1", StudentName: "Sita Sharma",
		Email: "sita@example.com", Grade: "Grade 11", Status: domain.InquiryPending, CreatedAt: at, UpdatedAt: at}))
	require.NoError(t, f.inquiries.Create(ctx, &domain.Inquiry{ID: "q2", InstitutionID: "i1", StudentName: "Hari Karki",
		Email: "hari@example.com", Grade: "Nursery", Status: domain.InquiryPending, CreatedAt: at.Add(time.Hour), UpdatedAt: at}))
	require.NoError(t, f.reviews.Create(ctx, &domain.Review{ID: "r1", InstitutionID: "i1",
		Ratings: map[domain.ReviewCategory]int{domain.CategoryAcademic: 8}, CreatedAt: at}))

	handler := admin.NewHandler(admin.Config{
		Claims:    adminapp.NewClaimService(f.claims),
		Inquiries: adminapp.NewInquiryService(f.inquiries),
		Dashboard: adminapp.NewDashboardService(store, f.reviews, f.inquiries, f.claims),
	})
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := common.Principal{Subject: "admin", Username: "admin", Role: common.RoleAdmin}
			next.ServeHTTP(w, req.WithContext(common.WithPrincipal(req.Context(), user)))
		})
	})
	handler.Register(r)
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	}
	return rec, payload
}

func TestClaims_ApproveOnce(t *testing.T) {
	f := newFixture(t)

	rec, payload := f.do(t, http.MethodGet, "/claims?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["total"])

	rec, payload = f.do(t, http.MethodPost, "/claims/REF-1/approve", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "APPROVED", payload["status"])
	assert.NotEmpty(t, payload["decidedAt"])

	rec, _ = f.do(t, http.MethodPost, "/claims/REF-1/reject", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/claims/REF-404/approve", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, payload = f.do(t, http.MethodGet, "/claims?status=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "status")
}

func TestInquiries_SearchAndTransition(t *testing.T) {
	f := newFixture(t)

	_, payload := f.do(t, http.MethodGet, "/inquiries?institutionId=i1&q=NURSERY", "")
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "q2", items[0].(map[string]any)["id"])

	_, payload = f.do(t, http.MethodGet, "/inquiries?institutionId=i1", "")
	assert.EqualValues(t, 2, payload["total"])

	rec, payload := f.do(t, http.MethodPatch, "/inquiries/q1", `{"status":"contacted"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CONTACTED", payload["status"])

	rec, _ = f.do(t, http.MethodPatch, "/inquiries/q1", `{"status":"PENDING"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, payload = f.do(t, http.MethodPatch, "/inquiries/q1", `{"status":"ARCHIVED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "status")

	rec, _ = f.do(t, http.MethodPatch, "/inquiries/q1", ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInstitutionStats(t *testing.T) {
	f := newFixture(t)

	rec, payload := f.do(t, http.MethodGet, "/institutions/i1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sunrise Academy", payload["institutionName"])
	assert.EqualValues(t, 10, payload["catalogReviews"])
	assert.EqualValues(t, 1, payload["submittedReviews"])
	assert.EqualValues(t, 11, payload["totalReviews"])
	assert.EqualValues(t, 8, payload["submittedAverage"])
	assert.EqualValues(t, 2, payload["totalInquiries"])
	assert.EqualValues(t, 1, payload["pendingClaims"])
	assert.EqualValues(t, 2, payload["inquiries"].(map[string]any)["PENDING"])

	rec, _ = f.do(t, http.MethodGet, "/institutions/missing/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthVerify(t *testing.T) {
	f := newFixture(t)

	rec, payload := f.do(t, http.MethodGet, "/auth/verify", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ADMIN", payload["user"].(map[string]any)["role"])
}
