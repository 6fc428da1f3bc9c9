package query

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

// NewPage clamps page and limit to valid values. Anything below 1 falls back
// to the default, limit is capped at MaxLimit.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// ParsePage reads raw query string values; unparsable input uses the defaults.
func ParsePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		limit = DefaultLimit
	}
	return NewPage(page, limit)
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
