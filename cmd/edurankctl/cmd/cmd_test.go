package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRank_FallsBackToBuiltInCatalog(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "schools.json")

	out, err := execute(t, "rank", "--catalog", missing, "--type", "consultancy", "--dest", "USA", "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "MATCH")
	assert.Contains(t, out, "Alpha Education Consultancy")
	assert.NotContains(t, out, "Kathmandu University")
	assert.Contains(t, out, "institutions matched")
}

func TestRank_LimitAndSort(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "schools.json")

	out, err := execute(t, "rank", "--catalog", missing, "--sort", "fees_low", "--limit", "3")
	require.NoError(t, err)

	var rows int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 ") || strings.HasPrefix(line, "3 ") {
			rows++
		}
		assert.False(t, strings.HasPrefix(line, "4 "), line)
	}
	assert.Equal(t, 3, rows)
}

func TestQA_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	checks := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(checks, []byte("checks:\n  - name: health\n    path: /healthz\n    contains: ['\"status\":\"ok\"']\n"), 0o600))

	out, err := execute(t, "qa", "--base-url", srv.URL, "--checks", checks)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  health")
	assert.Contains(t, out, "1 passed, 0 failed")

	require.NoError(t, os.WriteFile(checks, []byte("checks:\n  - name: rankings\n    path: /rankings\n"), 0o600))
	out, err = execute(t, "qa", "--base-url", srv.URL, "--checks", checks)
	assert.ErrorContains(t, err, "1 of 1 checks failed")
	assert.Contains(t, out, "status 404")
}

func TestRoot_RejectsBadLogLevel(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"rank", "--log-level", "chatty"})
	assert.ErrorContains(t, root.Execute(), "--log-level")
}
