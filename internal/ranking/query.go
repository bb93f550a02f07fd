package ranking

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterFromQuery builds a FilterState from search page URL parameters.
// List parameters may repeat or carry comma-separated values.
func FilterFromQuery(values url.Values) FilterState {
	f := DefaultFilters()
	f.Query = strings.TrimSpace(values.Get("q"))
	f.Type = strings.ToUpper(strings.TrimSpace(values.Get("type")))
	f.City = strings.TrimSpace(values.Get("city"))
	if v, ok := parseAmount(values.Get("minFee")); ok {
		f.MinBudget = v
	}
	if v, ok := parseAmount(values.Get("maxFee")); ok {
		f.MaxBudget = v
	}
	if f.MinBudget > f.MaxBudget {
		f.MinBudget, f.MaxBudget = f.MaxBudget, f.MinBudget
	}
	f.Destinations = canonicalValues(listParam(values, "dest"), destinationSet)
	f.Facilities = canonicalValues(listParam(values, "facility"), facilitySet)
	f.Affiliation = canonicalValues(listParam(values, "affiliation"), affiliationSet)
	f.Programs = canonicalValues(listParam(values, "program"), programSet)
	f.SafetyFeatures = canonicalValues(listParam(values, "safety"), nil)
	return f
}

func parseAmount(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func listParam(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
