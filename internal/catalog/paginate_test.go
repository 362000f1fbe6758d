package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		total, page int
		perPage     int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"25 items over 9 per page", 25, 1, 9, 3, true, false},
		{"middle page", 25, 2, 9, 3, true, true},
		{"last page", 25, 3, 9, 3, false, true},
		{"exact multiple", 18, 2, 9, 2, false, true},
		{"empty set still has one page", 0, 1, 9, 1, false, false},
		{"single item", 1, 1, 9, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Paginate(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.total, info.TotalItems)
			assert.Equal(t, tt.page, info.CurrentPage)
			assert.Equal(t, tt.wantNext, info.HasNextPage)
			assert.Equal(t, tt.wantPrev, info.HasPrevPage)
		})
	}
}

func TestPageSlice(t *testing.T) {
	t.Parallel()
	parts := partsWithPrices(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)

	assert.Len(t, PageSlice(parts, 1, 9), 9)
	assert.Len(t, PageSlice(parts, 2, 9), 9)
	assert.Len(t, PageSlice(parts, 3, 9), 7, "last page holds the remainder")
	assert.Empty(t, PageSlice(parts, 4, 9), "pages past the end are empty, not an error")
	assert.Empty(t, PageSlice(parts, 0, 9))
	assert.Empty(t, PageSlice(nil, 1, 9))

	// slicing never reorders
	assert.Equal(t, []float64{10, 11, 12, 13, 14, 15, 16, 17, 18}, pricesOf(PageSlice(parts, 2, 9)))
}
