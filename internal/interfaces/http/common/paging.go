package common

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryInt returns the positive integer at key, or fallback when it is
// absent, malformed or not positive.
func QueryInt(query url.Values, key string, fallback int) int {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// MaxPage is the highest page number ParsePaging returns.
const MaxPage = 100000

// ParsePaging reads page and limit from the query. page is capped at MaxPage
// and limit at max when max is positive.
func ParsePaging(query url.Values, defaultLimit, max int) (page, limit int) {
	page = QueryInt(query, "page", 1)
	if page > MaxPage {
		page = MaxPage
	}
	limit = QueryInt(query, "limit", defaultLimit)
	if max > 0 && limit > max {
		limit = max
	}
	return page, limit
}
