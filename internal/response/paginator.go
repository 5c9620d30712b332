package response

import (
	"net/http"
	"net/url"
	"strconv"
)

// Query parameters understood by [NewPaginator] and used when building
// pagination links.
const (
	PageParam    = "page"
	PerPageParam = "per-page"
)

// Link relations produced by [Paginator.Links].
const (
	LinkSelf  = "self"
	LinkFirst = "first"
	LinkPrev  = "prev"
	LinkNext  = "next"
	LinkLast  = "last"
)

// PageSource describes a single page of a larger result set.
// Page is 0-based.
type PageSource interface {
	TotalCount() int
	PageCount() int
	Page() int
	PageSize() int
}

// Paginator is the default [PageSource] implementation.
type Paginator struct {
	total int
	page  int
	size  int
}

// NewPaginator builds a paginator from explicit values. page is 0-based and
// is clamped into the valid range for total and size.
func NewPaginator(total, page, size int) *Paginator {
	p := &Paginator{total: max(total, 0), size: size}
	p.page = p.clamp(page)
	return p
}

// PageRequest is the page a client asked for, before the total is known.
// Page is 0-based.
type PageRequest struct {
	Page int
	Size int
}

// PageRequestFromRequest reads the 1-based "page" and the "per-page" query
// parameters of r. Missing or malformed values fall back to the first page
// and defaultSize; per-page is capped at maxSize when maxSize is positive.
func PageRequestFromRequest(r *http.Request, defaultSize, maxSize int) PageRequest {
	q := r.URL.Query()

	size := defaultSize
	if v, err := strconv.Atoi(q.Get(PerPageParam)); err == nil && v > 0 {
		size = v
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}

	page := 0
	if v, err := strconv.Atoi(q.Get(PageParam)); err == nil {
		page = v - 1
	}

	return PageRequest{Page: page, Size: size}
}

// Paginator resolves the request against total.
func (pr PageRequest) Paginator(total int) *Paginator {
	return NewPaginator(total, pr.Page, pr.Size)
}

// TotalCount returns the number of items across all pages.
func (p *Paginator) TotalCount() int { return p.total }

// Page returns the 0-based index of the current page.
func (p *Paginator) Page() int { return p.page }

// PageSize returns the number of items per page.
func (p *Paginator) PageSize() int { return p.size }

// PageCount returns the number of pages. A non-positive page size means a
// single page holding everything.
func (p *Paginator) PageCount() int {
	if p.size < 1 {
		if p.total > 0 {
			return 1
		}
		return 0
	}
	return (p.total + p.size - 1) / p.size
}

// Offset returns the index of the first item of the current page.
func (p *Paginator) Offset() int {
	if p.size < 1 {
		return 0
	}
	return p.page * p.size
}

// Limit returns the maximum number of items on the current page, or -1
// when the page is unbounded.
func (p *Paginator) Limit() int {
	if p.size < 1 {
		return -1
	}
	return p.size
}

func (p *Paginator) clamp(page int) int {
	last := p.PageCount() - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Link is a single RFC 8288 link.
type Link struct {
	Rel string
	URL string
}

// Links builds navigation links for p relative to base, keeping every other
// query parameter of base intact. self is always present; first and prev
// only when a previous page exists; next and last only when a following
// page exists.
func Links(p PageSource, base *url.URL) []Link {
	links := []Link{{Rel: LinkSelf, URL: pageURL(base, p.Page(), p.PageSize())}}

	page, count := p.Page(), p.PageCount()
	if page > 0 {
		links = append(links,
			Link{Rel: LinkFirst, URL: pageURL(base, 0, p.PageSize())},
			Link{Rel: LinkPrev, URL: pageURL(base, page-1, p.PageSize())},
		)
	}
	if page < count-1 {
		links = append(links,
			Link{Rel: LinkNext, URL: pageURL(base, page+1, p.PageSize())},
			Link{Rel: LinkLast, URL: pageURL(base, count-1, p.PageSize())},
		)
	}

	return links
}

func pageURL(base *url.URL, page, size int) string {
	u := *base
	q := u.Query()
	q.Set(PageParam, strconv.Itoa(page+1))
	if size > 0 {
		q.Set(PerPageParam, strconv.Itoa(size))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
