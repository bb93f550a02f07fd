package public_test

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

	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/infrastructure/memory"
	"github.com/edurank-nepal/api/internal/interfaces/http/common"
	"github.com/edurank-nepal/api/internal/interfaces/http/public"
	publicapp "github.com/edurank-nepal/api/internal/public/application"
	"github.com/edurank-nepal/api/internal/public/domain"
)

func intPtr(v int) *int { return &v }

func fixtureCatalog() []domain.Institution {
	return []domain.Institution{
		{ID: "s1", Slug: "sunrise-academy", Name: "Sunrise Academy", Type: domain.TypeSchool, Tier: domain.TierFree,
			City: "Kathmandu", Address: "Baneshwor, Kathmandu", Fees: 120000, Rating: 4.5, EduRankScore: intPtr(88),
			Features: []string{"Library", "Labs"}, Affiliation: []string{"NEB"}},
		{ID: "s2", Slug: "valley-college", Name: "Valley College", Type: domain.TypeCollege, Tier: domain.TierPremium,
			City: "Lalitpur", Address: "Pulchowk, Lalitpur", Fees: 250000, Rating: 4.0, EduRankScore: intPtr(75),
			FeeDetails: &domain.FeeDetails{Admission: 20000, Monthly: 20000, Annual: 240000}},
		{ID: "s3", Slug: "alpha-education-consultancy", Name: "Alpha Education Consultancy", Type: domain.TypeConsultancy,
			Tier: domain.TierFree, City: "Kathmandu", Address: "Putalisadak, Kathmandu", Fees: 25000, Rating: 4.8,
			Destinations: []string{"USA", "UK"}},
	}
}

type fakeAuthenticator struct{}

func (fakeAuthenticator) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if username == "admin" && password == "secret" {
		return "token-123", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return "", time.Time{}, public.ErrInvalidCredentials
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	store := catalog.NewStaticStore(fixtureCatalog())
	handler := public.NewHandler(public.Config{
		Institutions:  publicapp.NewInstitutionQueryService(store, nil),
		Reviews:       publicapp.NewReviewService(store, memory.NewReviewRepository()),
		Inquiries:     publicapp.NewInquiryCommandService(store, memory.NewInquiryRepository()),
		Claims:        publicapp.NewClaimCommandService(store, memory.NewClaimRepository()),
		Authenticator: fakeAuthenticator{},
	})
	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	}
	return rec, payload
}

func itemIDs(t *testing.T, payload map[string]any) []string {
	t.Helper()
	items, ok := payload["items"].([]any)
	require.True(t, ok, "items missing: %v", payload)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.(map[string]any)["id"].(string))
	}
	return ids
}

func TestSearch_PremiumFirstThenMatchScore(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodGet, "/institutions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"s2", "s3", "s1"}, itemIDs(t, payload))
	assert.EqualValues(t, 3, payload["total"])

	first := payload["items"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 98, first["matchScore"])
	assert.EqualValues(t, 240000, first["annualFee"])
}

func TestSearch_HardFiltersAndPaging(t *testing.T) {
	h := newRouter(t)

	_, payload := do(t, h, http.MethodGet, "/institutions?type=consultancy&dest=usa", "")
	assert.Equal(t, []string{"s3"}, itemIDs(t, payload))

	_, payload = do(t, h, http.MethodGet, "/institutions?city=kathmandu&limit=1&page=2", "")
	assert.Equal(t, []string{"s1"}, itemIDs(t, payload))
	assert.EqualValues(t, 2, payload["total"])
	assert.EqualValues(t, 2, payload["page"])

	rec, payload := do(t, h, http.MethodGet, "/institutions?page=461168601842738792&limit=20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, itemIDs(t, payload))
	assert.EqualValues(t, 3, payload["total"])
	assert.EqualValues(t, common.MaxPage, payload["page"])
}

func TestDetail(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodGet, "/institutions/sunrise-academy?facility=Library", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sunrise Academy", payload["name"])
	assert.Len(t, payload["matchBreakdown"], 7)
	assert.NotZero(t, payload["matchScore"])

	rec, _ = do(t, h, http.MethodGet, "/institutions/s3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, payload = do(t, h, http.MethodGet, "/institutions/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", payload["error"])
}

func TestRankingsAndCity(t *testing.T) {
	h := newRouter(t)

	_, payload := do(t, h, http.MethodGet, "/rankings", "")
	assert.Equal(t, []string{"s1", "s2", "s3"}, itemIDs(t, payload))

	_, payload = do(t, h, http.MethodGet, "/rankings?category=COLLEGE", "")
	assert.Equal(t, []string{"s2"}, itemIDs(t, payload))

	_, payload = do(t, h, http.MethodGet, "/cities/lalitpur", "")
	assert.Equal(t, []string{"s2"}, itemIDs(t, payload))
}

func TestCompare(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodGet, "/compare?id=s1,s2&id=s3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s3", payload["bestRatingId"])
	assert.Equal(t, "s3", payload["lowestAnnualFeeId"])

	rec, payload = do(t, h, http.MethodGet, "/compare?id=s1,s2,s3,s1&id=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "id")

	rec, _ = do(t, h, http.MethodGet, "/compare", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggest_FallsBackToNameScan(t *testing.T) {
	h := newRouter(t)

	_, payload := do(t, h, http.MethodGet, "/institutions/suggest?q=valley", "")
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "valley-college", items[0].(map[string]any)["slug"])
}

func TestFilterOptions(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodGet, "/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, payload["types"], "CONSULTANCY")
	assert.Contains(t, payload["sorts"], "fees_low")
	assert.EqualValues(t, 1000000, payload["maxBudget"])
}

func TestReviews_SubmitAndList(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodPost, "/institutions/sunrise-academy/reviews",
		`{"ratings":{"academic":9,"teaching":8},"comment":"Great teachers"}`)
	require.Equal(t, http.StatusCreated, rec.Code, payload)
	assert.Equal(t, "Anonymous", payload["authorName"])
	assert.EqualValues(t, 8.5, payload["average"])
	assert.Equal(t, "s1", payload["institutionId"])

	rec, payload = do(t, h, http.MethodGet, "/institutions/sunrise-academy/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["total"])
}

func TestReviews_Rejected(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodPost, "/institutions/sunrise-academy/reviews", `{"ratings":{"academic":11}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload, "fields")

	rec, payload = do(t, h, http.MethodPost, "/institutions/sunrise-academy/reviews", `{"ratings":{"parking":5}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "ratings")

	rec, _ = do(t, h, http.MethodPost, "/institutions/sunrise-academy/reviews", `{"ratings":{"academic":5},"extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/institutions/nowhere/reviews", `{"ratings":{"academic":5}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInquiry(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodPost, "/institutions/valley-college/inquiries",
		`{"studentName":"Sita Sharma","email":"sita@example.com","phone":"+977 9800000000","grade":"Grade 11"}`)
	require.Equal(t, http.StatusCreated, rec.Code, payload)
	assert.Equal(t, "PENDING", payload["status"])
	assert.Equal(t, "s2", payload["institutionId"])

	rec, payload = do(t, h, http.MethodPost, "/institutions/valley-college/inquiries",
		`{"studentName":"Sita","email":"not-an-email","phone":"98","grade":"11"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "email")
}

func TestClaims(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodPost, "/claims",
		`{"mode":"CLAIM","institutionId":"sunrise-academy","contactPerson":"Ram Thapa","position":"Principal","officialEmail":"ram@sunrise.edu.np","phone":"01-4000000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, payload)
	assert.Equal(t, "Sunrise Academy", payload["institutionName"])
	assert.Equal(t, "PENDING", payload["status"])
	assert.True(t, strings.HasPrefix(payload["id"].(string), "REF-"))

	rec, payload = do(t, h, http.MethodPost, "/claims",
		`{"mode":"REGISTER","institutionName":"New School","city":"Butwal","type":"school","contactPerson":"Gita","position":"Owner","officialEmail":"gita@newschool.np","phone":"9800000000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, payload)
	assert.Empty(t, payload["institutionId"])

	rec, payload = do(t, h, http.MethodPost, "/claims",
		`{"mode":"REGISTER","contactPerson":"Gita","position":"Owner","officialEmail":"gita@newschool.np","phone":"9800000000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["fields"], "institutionName")
}

func TestLogin(t *testing.T) {
	h := newRouter(t)

	rec, payload := do(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-123", payload["accessToken"])
	assert.Equal(t, "Bearer", payload["tokenType"])

	rec, _ = do(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
