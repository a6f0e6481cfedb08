// Package pagination normalizes raw page/limit query input and builds the
// pagination metadata returned alongside every list response.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized page/limit pair. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse clamps raw query values to valid pagination parameters. Absent,
// non-numeric or out-of-range values fall back to the defaults; it never
// fails.
func Parse(pageRaw, limitRaw string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if page, err := strconv.Atoi(pageRaw); err == nil && page >= 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(limitRaw); err == nil && limit >= 1 {
		p.Limit = limit
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}

	return p
}

// Offset returns the row offset corresponding to Page and Limit.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Metadata describes one page of a list result.
type Metadata struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewMetadata builds the metadata for a total record count. An empty result
// set has totalPages 0.
func NewMetadata(p Params, total int64) Metadata {
	totalPages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		totalPages++
	}
	return Metadata{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
