package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// Column positions of a schools.json row.
const (
	colName = iota
	colArea
	colMonthlyFee
	colAdmissionFee
	colCurriculum
	colFacilities
	colWebsite
	colPhone
	colDescription
)

const (
	defaultCity        = "Kathmandu"
	websitePlaceholder = "—"
	defaultSchoolImage = imageBase + "photo-1546410531-bb4caa6b424d?q=80&w=800&auto=format&fit=crop"
	dynamicIDPrefix    = "dynamic-"
)

// ParseRows maps a JSON array of positional rows into SCHOOL records.
// Parsed records carry no rating or EduRank score; those need real review
// data and are left unset rather than invented.
func ParseRows(data []byte) ([]domain.Institution, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode catalog rows: %w", err)
	}

	result := make([]domain.Institution, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for index, row := range rows {
		cells, err := rowStrings(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		inst, ok := parseRow(index, cells)
		if !ok {
			continue
		}
		inst.Slug = uniqueSlug(inst.Slug, seen)
		result = append(result, inst)
	}
	return result, nil
}

func parseRow(index int, cells []string) (domain.Institution, bool) {
	name := strings.TrimSpace(cell(cells, colName))
	if name == "" {
		return domain.Institution{}, false
	}

	area := strings.TrimSpace(cell(cells, colArea))
	monthly := parseFee(cell(cells, colMonthlyFee))
	admission := parseFee(cell(cells, colAdmissionFee))

	inst := domain.Institution{
		ID:      dynamicIDPrefix + strconv.Itoa(index),
		Slug:    domain.Slugify(name),
		Name:    name,
		Type:    domain.TypeSchool,
		Tier:    domain.TierFree,
		Address: area,
		City:    cityFromArea(area),
		Fees:    monthly * 12,
		FeeDetails: &domain.FeeDetails{
			Admission: admission,
			Monthly:   monthly,
			Annual:    monthly * 12,
		},
		Features:    splitList(cell(cells, colFacilities)),
		Affiliation: splitList(cell(cells, colCurriculum)),
		IsVerified:  true,
		Image:       defaultSchoolImage,
		Phone:       strings.TrimSpace(cell(cells, colPhone)),
		Description: strings.TrimSpace(cell(cells, colDescription)),
	}
	if website := strings.TrimSpace(cell(cells, colWebsite)); website != websitePlaceholder {
		inst.Website = website
	}
	return inst, true
}

// parseFee keeps only the digits of raw. Empty or unparsable input is 0.
func parseFee(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// cityFromArea returns the last comma-separated part of area.
func cityFromArea(area string) string {
	parts := strings.Split(area, ",")
	if city := strings.TrimSpace(parts[len(parts)-1]); city != "" {
		return city
	}
	return defaultCity
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// uniqueSlug returns slug, or the first free slug-N when slug is taken.
// Every slug it returns is recorded in seen.
func uniqueSlug(slug string, seen map[string]int) string {
	n := seen[slug]
	seen[slug] = n + 1
	if n == 0 {
		return slug
	}
	for i := n + 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if seen[candidate] == 0 {
			seen[candidate] = 1
			return candidate
		}
	}
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// rowStrings renders every cell as text. Strings are unquoted, null is
// empty, and numbers keep their literal form.
func rowStrings(row []json.RawMessage) ([]string, error) {
	out := make([]string, len(row))
	for i, raw := range row {
		trimmed := strings.TrimSpace(string(raw))
		switch {
		case trimmed == "" || trimmed == "null":
			out[i] = ""
		case strings.HasPrefix(trimmed, `"`):
			if err := json.Unmarshal(raw, &out[i]); err != nil {
				return nil, fmt.Errorf("column %d: %w", i, err)
			}
		case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
			return nil, fmt.Errorf("column %d: unexpected nested value", i)
		default:
			out[i] = trimmed
		}
	}
	return out, nil
}
