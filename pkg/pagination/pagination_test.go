// Copyright (c) 2026 Inner Garden. All rights reserved.

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		target string
		want   pagination.Params
	}{
		{"/", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"/?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"/?page=-2&limit=0", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"/?limit=5000", pagination.Params{Page: 1, Limit: pagination.MaxLimit}},
		{"/?page=x", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"/?page=9223372036854775807", pagination.Params{Page: pagination.MaxPage, Limit: pagination.DefaultLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.FromRequest(httptest.NewRequest("GET", tt.target, nil)))
		})
	}
}

func TestWindow(t *testing.T) {
	params := pagination.Params{Page: 2, Limit: 10}

	start, end := params.Window(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = params.Window(15)
	assert.Equal(t, 10, start)
	assert.Equal(t, 15, end)

	start, end = params.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

/*
TestWindow_HugePage verifies that a page whose offset overflows int yields an empty range.
*/
func TestWindow_HugePage(t *testing.T) {
	params := pagination.Params{Page: math.MaxInt, Limit: 48}

	assert.Equal(t, math.MaxInt, params.Offset())

	start, end := params.Window(2)
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, pagination.NewMeta(1, 10, 21))
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 21).TotalPages)
}
