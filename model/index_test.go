package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name        string
		in          Pagination
		wantPerPage int
		wantPage    int
	}{
		{"defaults when unset", Pagination{}, 15, 1},
		{"explicit values pass through", Pagination{PerPage: intPtr(20), Page: intPtr(3)}, 20, 3},
		{"per_page capped at maximum", Pagination{PerPage: intPtr(500)}, 100, 1},
		{"maximum itself allowed", Pagination{PerPage: intPtr(100)}, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perPage, page := tt.in.Normalize()
			assert.Equal(t, tt.wantPerPage, perPage)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}
