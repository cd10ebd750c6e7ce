package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		page     int
		limit    int
		lastPage int
	}{
		{"exact multiple", 40, 1, 20, 2},
		{"partial last page", 41, 2, 20, 3},
		{"single page", 5, 1, 20, 1},
		{"empty result", 0, 1, 20, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.page, meta.CurrentPage)
			assert.Equal(t, tc.lastPage, meta.LastPage)
			assert.Equal(t, tc.total, meta.Total)
		})
	}
}

func TestPageQueryNormalize(t *testing.T) {
	var q PageQuery
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = PageQuery{Page: 3, Limit: 10}
	q.Normalize()
	assert.Equal(t, 20, q.Offset())
}
