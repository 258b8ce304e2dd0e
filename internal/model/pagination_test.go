package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{name: "empty table", page: 1, limit: 10, total: 0, totalPages: 0},
		{name: "single partial page", page: 1, limit: 10, total: 3, totalPages: 1},
		{name: "exact fit", page: 2, limit: 5, total: 10, totalPages: 2, hasPrev: true},
		{name: "first of many", page: 1, limit: 10, total: 25, totalPages: 3, hasNext: true},
		{name: "middle page", page: 2, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last partial page", page: 3, limit: 10, total: 25, totalPages: 3, hasPrev: true},
		{name: "past the end", page: 9, limit: 10, total: 25, totalPages: 3, hasPrev: true},
		{name: "huge page", page: math.MaxInt/4 + 2, limit: 4, total: 10, totalPages: 3, hasPrev: true},
		{name: "max page", page: math.MaxInt, limit: 100, total: 250, totalPages: 3, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
}

func TestOffset_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/4+2, 4))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 100))
	assert.Equal(t, math.MaxInt-3, Offset(math.MaxInt/4+1, 4))
}
