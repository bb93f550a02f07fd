package ranking

import (
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
)

var (
	FacilityOptions    = []string{"Library", "Labs", "Sports", "Transport", "Cafeteria", "Hostel", "Swimming Pool", "Visa Guidance", "Job Placement"}
	AffiliationOptions = []string{"NEB", "TU", "KU", "PU", "Foreign"}
	DestinationOptions = []string{"USA", "Australia", "UK", "Canada", "Japan", "South Korea", "New Zealand"}
	ProgramOptions     = []string{"IELTS", "PTE", "SAT", "TOEFL", "Python", "Java", "Web Design", "Digital Marketing"}
	SortOptions        = []SortKey{SortMatch, SortRating, SortFeesLow, SortFeesHigh}

	facilitySet    = makeOptionSet(FacilityOptions)
	affiliationSet = makeOptionSet(AffiliationOptions)
	destinationSet = makeOptionSet(DestinationOptions)
	programSet     = makeOptionSet(ProgramOptions)
)

// Options is the set of choices offered by the search page.
type Options struct {
	Types        []domain.InstitutionType
	Facilities   []string
	Affiliations []string
	Destinations []string
	Programs     []string
	Sorts        []SortKey
	MaxBudget    int64
}

// SearchOptions returns the search page choices.
func SearchOptions() Options {
	return Options{
		Types:        append([]domain.InstitutionType(nil), domain.InstitutionTypes...),
		Facilities:   append([]string(nil), FacilityOptions...),
		Affiliations: append([]string(nil), AffiliationOptions...),
		Destinations: append([]string(nil), DestinationOptions...),
		Programs:     append([]string(nil), ProgramOptions...),
		Sorts:        append([]SortKey(nil), SortOptions...),
		MaxBudget:    DefaultMaxBudget,
	}
}

// makeOptionSet maps lower-cased labels to their canonical spelling.
func makeOptionSet(items []string) map[string]string {
	set := make(map[string]string, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[strings.ToLower(item)] = item
	}
	return set
}

// canonicalValues rewrites known labels to their canonical spelling and
// drops duplicates. Unknown labels are kept as typed.
func canonicalValues(values []string, known map[string]string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if canonical, ok := known[strings.ToLower(value)]; ok {
			value = canonical
		}
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, value)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
