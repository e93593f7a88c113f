package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults applied", Params{}, Params{Skip: 0, Limit: DefaultLimit}},
		{"negative skip clamped", Params{Skip: -5, Limit: 10}, Params{Skip: 0, Limit: 10}},
		{"limit capped", Params{Skip: 0, Limit: 500}, Params{Skip: 0, Limit: MaxLimit}},
		{"valid window untouched", Params{Skip: 40, Limit: 20}, Params{Skip: 40, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestNewPage_Math(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		skip      int
		limit     int
		wantPage  int
		wantPages int
	}{
		{"first page", 45, 0, 10, 1, 5},
		{"middle page", 45, 20, 10, 3, 5},
		{"exact division", 40, 30, 10, 4, 4},
		{"empty collection", 0, 0, 10, 1, 0},
		{"skip beyond total", 5, 100, 10, 11, 1},
		{"single item", 1, 0, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage([]int{}, tt.total, tt.skip, tt.limit)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.Pages)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.limit, page.Size)
		})
	}
}

func TestNewPage_ZeroLimit(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 2, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
}

func TestNewPage_NilItems(t *testing.T) {
	page := NewPage[string](nil, 0, 0, 10)
	// Items must serialize as [], never null.
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
