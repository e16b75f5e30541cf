package pagination

import (
	"math"
	"net/url"

	"github.com/klueko/sheos/pkg/queryparam"
)

// Options carries the page-size policy of one endpoint.
type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// limit resolves the requested page size: missing, malformed or
// non-positive values fall back to the default, oversized ones are clamped.
func (o Options) limit(raw string) int {
	def := o.DefaultLimit
	if def < 1 {
		def = 1
	}
	v, usedDefault := queryparam.Int(raw, def)
	if usedDefault || v < 1 {
		v = def
	}
	if o.MaxLimit > 0 && v > o.MaxLimit {
		v = o.MaxLimit
	}
	return v
}

// FromPage reads page and limit; the offset is (page-1)*limit. A page below
// one is treated as the first page.
func FromPage(q url.Values, opts Options) Params {
	limit := opts.limit(q.Get("limit"))

	page, _ := queryparam.Int(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}

	return Params{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// FromOffset reads limit and a raw offset. Negative offsets become zero.
func FromOffset(q url.Values, opts Options) Params {
	limit := opts.limit(q.Get("limit"))

	offset, _ := queryparam.Int(q.Get("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	return Params{Page: offset/limit + 1, Limit: limit, Offset: offset}
}

// Meta is the pagination block of a paged listing response.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewMeta computes totalPages = ceil(total/limit) and the next/prev flags.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
