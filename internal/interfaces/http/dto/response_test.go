package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"exact multiple", 1, 10, 30, 3, true, false},
		{"partial last page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"single page", 1, 12, 5, 1, false, false},
		{"empty result", 1, 12, 0, 0, false, false},
		{"empty result past first page", 2, 10, 0, 0, false, true},
		{"page beyond the end", 9, 10, 25, 3, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, info.TotalPages)
			assert.Equal(t, tt.hasNext, info.HasNext)
			assert.Equal(t, tt.hasPrev, info.HasPrev)
			assert.Equal(t, tt.total, info.Total)
		})
	}
}

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		query        PageQuery
		defaultLimit int
		page         int
		limit        int
	}{
		{"defaults apply", PageQuery{}, PublicPageSize, 1, 12},
		{"admin default", PageQuery{}, AdminPageSize, 1, 20},
		{"negative page clamps to first", PageQuery{Page: -3, Limit: 10}, PublicPageSize, 1, 10},
		{"zero limit falls back", PageQuery{Page: 2}, PublicPageSize, 2, 12},
		{"oversized limit clamps", PageQuery{Page: 1, Limit: 5000}, PublicPageSize, 1, MaxPageSize},
		{"in range passes through", PageQuery{Page: 4, Limit: 50}, AdminPageSize, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := tt.query.Normalize(tt.defaultLimit)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.limit, limit)
		})
	}
}
