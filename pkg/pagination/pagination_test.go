package pagination_test

import (
	"testing"

	"github.com/storekeep/backoffice-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name            string
		page, perPage   int
		wantPage        int
		wantPerPage     int
	}{
		{"defaults applied", 0, 0, 1, 15},
		{"negative page", -3, 10, 1, 10},
		{"per page capped", 1, 500, 1, 100},
		{"valid passthrough", 2, 25, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &pagination.PaginationParams{Page: tt.page, PerPage: tt.perPage}
			params.Validate()

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	params := &pagination.PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := pagination.NewPagination(2, 15, 31)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, int64(31), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_SinglePage(t *testing.T) {
	p := pagination.NewPagination(1, 15, 7)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
