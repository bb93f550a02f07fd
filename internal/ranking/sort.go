package ranking

import (
	"sort"
	"strings"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// SortKey selects the ordering applied within a tier.
type SortKey string

const (
	SortMatch    SortKey = "match"
	SortRating   SortKey = "rating"
	SortFeesLow  SortKey = "fees_low"
	SortFeesHigh SortKey = "fees_high"
)

// ParseSortKey maps a request value to a SortKey, defaulting to match score.
func ParseSortKey(value string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(value))) {
	case SortRating:
		return SortRating
	case SortFeesLow:
		return SortFeesLow
	case SortFeesHigh:
		return SortFeesHigh
	}
	return SortMatch
}

// Scored pairs an institution with its match score for one filter.
type Scored struct {
	Institution domain.Institution
	MatchScore  int
}

// Score computes the match score of every institution.
func Score(list []domain.Institution, f FilterState) []Scored {
	scored := make([]Scored, 0, len(list))
	for _, inst := range list {
		scored = append(scored, Scored{Institution: inst, MatchScore: CalculateMatchScore(inst, f)})
	}
	return scored
}

// SortInstitutions orders items in place. PREMIUM listings always precede
// the rest; the key only orders within a tier. Ties keep input order.
func SortInstitutions(items []Scored, key SortKey) {
	less := withinTier(key)
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Institution.IsPremium(), items[j].Institution.IsPremium()
		if pi != pj {
			return pi
		}
		return less(items[i], items[j])
	})
}

func withinTier(key SortKey) func(a, b Scored) bool {
	switch key {
	case SortRating:
		return func(a, b Scored) bool { return a.Institution.Rating > b.Institution.Rating }
	case SortFeesLow:
		return func(a, b Scored) bool { return a.Institution.AnnualFee() < b.Institution.AnnualFee() }
	case SortFeesHigh:
		return func(a, b Scored) bool { return a.Institution.AnnualFee() > b.Institution.AnnualFee() }
	default:
		return func(a, b Scored) bool { return a.MatchScore > b.MatchScore }
	}
}

// SortByEduRank orders institutions by descending EduRank score, unrated last.
func SortByEduRank(list []domain.Institution) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score() > list[j].Score()
	})
}
