package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/edurank-nepal/api/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.Config{
		Env:            "test",
		Addr:           "127.0.0.1:0",
		Storage:        config.StorageMemory,
		CatalogFile:    filepath.Join(t.TempDir(), "schools.json"),
		CatalogRefresh: "@every 1h",
		AllowedOrigins: []string{"https://edurank.np"},
		Auth: config.AuthConfig{
			Secret:            []byte("test-secret"),
			Issuer:            "edurank-test",
			TTL:               time.Hour,
			AdminUsername:     "admin",
			AdminPasswordHash: hash,
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(context.Background(), testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { srv.shutdownBackground(context.Background()) })
	return srv
}

func request(t *testing.T, h http.Handler, method, target, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	}
	return rec, payload
}

func TestServer_HealthAndCatalogFallback(t *testing.T) {
	srv := newTestServer(t)

	rec, payload := request(t, srv.Handler(), http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.EqualValues(t, 1, payload["catalogVersion"])
	assert.NotZero(t, payload["institutions"])

	rec, payload = request(t, srv.Handler(), http.MethodGet, "/institutions?type=CONSULTANCY&dest=USA", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha Education Consultancy")
	assert.NotZero(t, payload["total"])
}

func TestServer_SuggestUsesIndex(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := request(t, srv.Handler(), http.MethodGet, "/institutions/suggest?q=kathm", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kathmandu-university")
}

func TestServer_AdminRequiresToken(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec, _ := request(t, h, http.MethodGet, "/admin/claims", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = request(t, h, http.MethodGet, "/admin/claims", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = request(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, payload := request(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"letmein"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := payload["accessToken"].(string)

	rec, payload = request(t, h, http.MethodGet, "/admin/auth/verify", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", payload["user"].(map[string]any)["username"])
}

func TestServer_ClaimWorkflow(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec, payload := request(t, h, http.MethodPost, "/claims",
		`{"mode":"CLAIM","institutionId":"gems-school","contactPerson":"Hari Karki","position":"Principal","officialEmail":"hari@gems.edu.np","phone":"01-5000000"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, payload)
	claimID := payload["id"].(string)

	_, login := request(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"letmein"}`, "")
	token := login["accessToken"].(string)

	rec, payload = request(t, h, http.MethodGet, "/admin/claims?status=PENDING", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["total"])

	rec, payload = request(t, h, http.MethodPost, "/admin/claims/"+claimID+"/approve", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "APPROVED", payload["status"])

	rec, payload = request(t, h, http.MethodGet, "/admin/institutions/9/stats", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, payload["pendingClaims"])
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/institutions", nil)
	req.Header.Set("Origin", "https://edurank.np")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://edurank.np", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := testConfig(t)
	cfg.CatalogWatch = true
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	cfg.Addr = ln.Addr().String()
	require.NoError(t, ln.Close())

	srv, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
	http.DefaultClient.CloseIdleConnections()
}
