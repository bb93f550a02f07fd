// Package ranking scores and orders institutions against a search filter.
package ranking

import (
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// DefaultMaxBudget is the upper end of the budget slider. A filter at this
// value means "any budget" for hard filtering.
const DefaultMaxBudget int64 = 1000000

// FilterState describes one search. It is rebuilt per request and never stored.
type FilterState struct {
	Query          string
	Type           string
	City           string
	MinBudget      int64
	MaxBudget      int64
	Facilities     []string
	Affiliation    []string
	Programs       []string
	SafetyFeatures []string
	// Destinations only narrows results; it does not contribute to the score.
	Destinations []string
}

// DefaultFilters returns the empty search with the widest budget.
func DefaultFilters() FilterState {
	return FilterState{MaxBudget: DefaultMaxBudget}
}

// Overlap returns the fraction of requested values present in available.
// An empty request is full credit; a missing attribute with a non-empty
// request is zero.
func Overlap(requested, available []string) float64 {
	if len(requested) == 0 {
		return 1
	}
	if len(available) == 0 {
		return 0
	}
	matches := 0
	for _, want := range requested {
		if containsFold(available, want) {
			matches++
		}
	}
	return float64(matches) / float64(len(requested))
}

// Matches applies the hard filters of the search page. Institutions that
// fail any of them are not shown at all, regardless of score.
func Matches(inst domain.Institution, f FilterState) bool {
	if q := strings.TrimSpace(f.Query); q != "" && !containsInsensitive(inst.Name, q) {
		return false
	}
	if t := strings.TrimSpace(f.Type); t != "" && !strings.EqualFold(t, "ALL") && !strings.EqualFold(t, string(inst.Type)) {
		return false
	}
	if c := strings.TrimSpace(f.City); c != "" && !containsInsensitive(inst.City, c) {
		return false
	}
	if f.budgetRestricted() {
		fee := inst.AnnualFee()
		if fee < f.MinBudget || fee > f.MaxBudget {
			return false
		}
	}
	if !anyOf(f.Destinations, inst.Destinations) || !anyOf(f.Programs, inst.Programs) || !anyOf(f.Affiliation, inst.Affiliation) {
		return false
	}
	for _, facility := range f.Facilities {
		if !containsFold(inst.Features, facility) {
			return false
		}
	}
	return true
}

// budgetRestricted is false only for the untouched slider: no minimum and
// the maximum at DefaultMaxBudget. Any other maximum, including 0, applies.
func (f FilterState) budgetRestricted() bool {
	return f.MinBudget > 0 || f.MaxBudget != DefaultMaxBudget
}

// anyOf is true when nothing is requested or at least one requested value is available.
func anyOf(requested, available []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, want := range requested {
		if containsFold(available, want) {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func containsInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
