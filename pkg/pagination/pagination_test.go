// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zfatbt/tenufa/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"zero_page", "?page=0", 1, 10},
		{"negative_page", "?page=-2", 1, 10},
		{"garbage", "?page=abc&limit=xyz", 1, 10},
		{"over_max_limit", "?limit=500", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/posts"+tt.query, nil)
			params := pagination.FromRequest(r)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 10))
	assert.Equal(t, 1, pagination.TotalPages(1, 10))
	assert.Equal(t, 1, pagination.TotalPages(10, 10))
	assert.Equal(t, 2, pagination.TotalPages(11, 10))
	assert.Equal(t, 0, pagination.TotalPages(100, 0))
}
