// Package qa runs HTTP smoke checks against a deployed API.
package qa

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed checks.yaml
var defaultChecks []byte

// maxBody caps how much of a response is searched for expected text.
const maxBody = 4 << 20

// Check is one GET request and the text its body must contain.
type Check struct {
	Name     string   `yaml:"name"`
	Path     string   `yaml:"path"`
	Contains []string `yaml:"contains"`
}

// Suite is the YAML document holding the checks.
type Suite struct {
	Checks []Check `yaml:"checks"`
}

// Result is the outcome of one check.
type Result struct {
	Check    Check
	Status   int
	Missing  []string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check got a 200 containing every expected string.
func (r Result) Passed() bool {
	return r.Err == nil && r.Status == http.StatusOK && len(r.Missing) == 0
}

// DefaultSuite returns the built-in checks.
func DefaultSuite() (Suite, error) {
	return Parse(defaultChecks)
}

// LoadFile reads a suite from a YAML file.
func LoadFile(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read checks %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a suite.
func Parse(data []byte) (Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("parse checks: %w", err)
	}
	if len(suite.Checks) == 0 {
		return Suite{}, errors.New("no checks defined")
	}
	for i, c := range suite.Checks {
		if strings.TrimSpace(c.Name) == "" {
			return Suite{}, fmt.Errorf("check %d: name is required", i+1)
		}
		if !strings.HasPrefix(c.Path, "/") {
			return Suite{}, fmt.Errorf("check %q: path must start with /", c.Name)
		}
	}
	return suite, nil
}

// Runner executes checks against BaseURL.
type Runner struct {
	BaseURL     string
	Client      *http.Client
	Parallelism int
}

// Run executes every check and returns results in suite order. A failing
// check never stops the others; only ctx cancellation does.
func (r *Runner) Run(ctx context.Context, suite Suite) ([]Result, error) {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limit := r.Parallelism
	if limit <= 0 {
		limit = 4
	}
	base := strings.TrimRight(strings.TrimSpace(r.BaseURL), "/")

	results := make([]Result, len(suite.Checks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, check := range suite.Checks {
		i, check := i, check
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runCheck(gctx, client, base, check)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCheck(ctx context.Context, client *http.Client, base string, check Check) (res Result) {
	start := time.Now()
	res.Check = check
	defer func() { res.Duration = time.Since(start) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+check.Path, nil)
	if err != nil {
		res.Err = err
		return res
	}
	resp, err := client.Do(req)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		res.Err = fmt.Errorf("read body: %w", err)
		return res
	}
	text := string(body)
	for _, want := range check.Contains {
		if !strings.Contains(text, want) {
			res.Missing = append(res.Missing, want)
		}
	}
	return res
}

// Summarize counts passed and failed results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
