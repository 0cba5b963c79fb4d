package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_TotalPages(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{name: "exact multiple", page: 1, limit: 15, total: 30, wantPages: 2},
		{name: "partial last page", page: 1, limit: 15, total: 31, wantPages: 3},
		{name: "single item", page: 1, limit: 15, total: 1, wantPages: 1},
		{name: "empty result", page: 1, limit: 15, total: 0, wantPages: 0},
		{name: "limit one", page: 4, limit: 1, total: 7, wantPages: 7},
		{name: "zero limit guarded", page: 1, limit: 0, total: 10, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
