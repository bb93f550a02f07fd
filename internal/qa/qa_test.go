package qa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDefaultSuite(t *testing.T) {
	suite, err := DefaultSuite()
	require.NoError(t, err)

	names := make([]string, 0, len(suite.Checks))
	for _, c := range suite.Checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "consultancy search")
	assert.Contains(t, names, "training programs")
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte("checks: []"))
	assert.Error(t, err)

	_, err = Parse([]byte("checks:\n  - name: x\n    path: healthz\n"))
	assert.ErrorContains(t, err, "path must start with /")

	_, err = Parse([]byte("checks:\n  - path: /healthz\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = Parse([]byte("checks: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checks:\n  - name: ping\n    path: /healthz\n    contains: [ok]\n"), 0o600))

	suite, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, suite.Checks, 1)
	assert.Equal(t, []string{"ok"}, suite.Checks[0].Contains)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/institutions":
			_, _ = w.Write([]byte(`{"items":[{"name":"Alpha Education Consultancy","destinations":["USA"]}]}`))
		case "/healthz":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	suite := Suite{Checks: []Check{
		{Name: "health", Path: "/healthz", Contains: []string{`"status":"ok"`}},
		{Name: "consultancy", Path: "/institutions?type=CONSULTANCY", Contains: []string{"Alpha Education Consultancy", "USA"}},
		{Name: "missing text", Path: "/institutions", Contains: []string{"Broadway Infosys"}},
		{Name: "not found", Path: "/nowhere"},
	}}

	client := srv.Client()
	runner := &Runner{BaseURL: srv.URL + "/", Client: client, Parallelism: 2}
	results, err := runner.Run(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results[0].Passed())
	assert.True(t, results[1].Passed())
	assert.False(t, results[2].Passed())
	assert.Equal(t, []string{"Broadway Infosys"}, results[2].Missing)
	assert.False(t, results[3].Passed())
	assert.Equal(t, http.StatusNotFound, results[3].Status)
	assert.Positive(t, results[0].Duration)

	passed, failed := Summarize(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 2, failed)
	client.CloseIdleConnections()
}

func TestRunner_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	runner := &Runner{BaseURL: url}
	results, err := runner.Run(context.Background(), Suite{Checks: []Check{{Name: "down", Path: "/healthz"}}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Passed())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{BaseURL: "http://127.0.0.1:1"}
	_, err := runner.Run(ctx, Suite{Checks: []Check{{Name: "x", Path: "/"}}})
	assert.ErrorIs(t, err, context.Canceled)
}
