package response

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginator_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		page          int
		size          int
		wantPage      int
		wantPageCount int
		wantOffset    int
		wantLimit     int
	}{
		{name: "first page", total: 5, page: 0, size: 2, wantPage: 0, wantPageCount: 3, wantOffset: 0, wantLimit: 2},
		{name: "last page", total: 5, page: 2, size: 2, wantPage: 2, wantPageCount: 3, wantOffset: 4, wantLimit: 2},
		{name: "page beyond last is clamped", total: 5, page: 10, size: 2, wantPage: 2, wantPageCount: 3, wantOffset: 4, wantLimit: 2},
		{name: "negative page is clamped", total: 5, page: -3, size: 2, wantPage: 0, wantPageCount: 3, wantOffset: 0, wantLimit: 2},
		{name: "empty result", total: 0, page: 0, size: 20, wantPage: 0, wantPageCount: 0, wantOffset: 0, wantLimit: 20},
		{name: "unbounded page size", total: 7, page: 0, size: 0, wantPage: 0, wantPageCount: 1, wantOffset: 0, wantLimit: -1},
		{name: "exact multiple", total: 6, page: 1, size: 3, wantPage: 1, wantPageCount: 2, wantOffset: 3, wantLimit: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(tt.total, tt.page, tt.size)

			assert.Equal(t, tt.wantPage, p.Page())
			assert.Equal(t, tt.wantPageCount, p.PageCount())
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.wantLimit, p.Limit())
			assert.Equal(t, tt.total, p.TotalCount())
		})
	}
}

func TestPageRequestFromRequest_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "defaults", query: "", wantPage: 0, wantSize: 20},
		{name: "explicit page and size", query: "page=2&per-page=10", wantPage: 1, wantSize: 10},
		{name: "size capped", query: "per-page=1000", wantPage: 0, wantSize: 50},
		{name: "malformed values fall back", query: "page=abc&per-page=-4", wantPage: 0, wantSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/items?"+tt.query, nil)

			p := PageRequestFromRequest(r, 20, 50).Paginator(100)

			assert.Equal(t, tt.wantPage, p.Page())
			assert.Equal(t, tt.wantSize, p.PageSize())
		})
	}
}

func TestPageRequest_Paginator(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/items?page=9&per-page=2", nil)

	pr := PageRequestFromRequest(r, 20, 50)
	assert.Equal(t, PageRequest{Page: 8, Size: 2}, pr)

	p := pr.Paginator(5)
	assert.Equal(t, 2, p.Page(), "page is clamped to the last one")
	assert.Equal(t, 4, p.Offset())
}

func TestLinks_MiddlePage(t *testing.T) {
	base, err := url.Parse("http://example.com/api/articles?status=draft")
	require.NoError(t, err)

	links := Links(NewPaginator(10, 1, 2), base)

	rels := make([]string, 0, len(links))
	for _, l := range links {
		rels = append(rels, l.Rel)
	}
	assert.Equal(t, []string{LinkSelf, LinkFirst, LinkPrev, LinkNext, LinkLast}, rels)
	assert.Equal(t, "http://example.com/api/articles?page=2&per-page=2&status=draft", links[0].URL)
	assert.Equal(t, "http://example.com/api/articles?page=5&per-page=2&status=draft", links[4].URL)
}

func TestLinks_SinglePage(t *testing.T) {
	base, err := url.Parse("/api/articles")
	require.NoError(t, err)

	links := Links(NewPaginator(1, 0, 20), base)

	require.Len(t, links, 1)
	assert.Equal(t, LinkSelf, links[0].Rel)
}
