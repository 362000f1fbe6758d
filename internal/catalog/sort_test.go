package catalog

import (
	"slices"
	"testing"
	"time"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSortPartsByPrice(t *testing.T) {
	t.Parallel()
	parts := partsWithPrices(100, 50, 75)

	SortParts(parts, "price", models.SortAsc)
	assert.Equal(t, []float64{50, 75, 100}, pricesOf(parts))

	SortParts(parts, "price", models.SortDesc)
	assert.Equal(t, []float64{100, 75, 50}, pricesOf(parts))
}

func TestSortDirectionRoundTrip(t *testing.T) {
	t.Parallel()
	asc := partsWithPrices(7, 3, 11, 1, 9, 5)
	SortParts(asc, "price", models.SortAsc)

	desc := slices.Clone(asc)
	SortParts(desc, "price", models.SortDesc)

	slices.Reverse(desc)
	assert.Equal(t, pricesOf(asc), pricesOf(desc))
}

func TestSortPartsByTitleCaseInsensitive(t *testing.T) {
	t.Parallel()
	parts := []models.Part{
		testPart(func(p *models.Part) { p.Title = "brake disc" }),
		testPart(func(p *models.Part) { p.Title = "Air Filter" }),
		testPart(func(p *models.Part) { p.Title = "CABIN FILTER" }),
	}
	SortParts(parts, "title", models.SortAsc)

	titles := make([]string, len(parts))
	for i, p := range parts {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"Air Filter", "brake disc", "CABIN FILTER"}, titles)
}

func TestSortPartsByCreatedAt(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	parts := []models.Part{
		testPart(func(p *models.Part) { p.PartNumber = "B"; p.CreatedAt = base.AddDate(0, 1, 0) }),
		testPart(func(p *models.Part) { p.PartNumber = "A"; p.CreatedAt = base }),
		testPart(func(p *models.Part) { p.PartNumber = "C"; p.CreatedAt = base.AddDate(0, 2, 0) }),
	}
	SortParts(parts, "createdAt", models.SortDesc)
	assert.Equal(t, "C", parts[0].PartNumber)
	assert.Equal(t, "A", parts[2].PartNumber)
}

func TestSortUnknownKeyLeavesOrder(t *testing.T) {
	t.Parallel()
	parts := partsWithPrices(3, 1, 2)
	SortParts(parts, "nonexistent", models.SortAsc)
	assert.Equal(t, []float64{3, 1, 2}, pricesOf(parts))

	SortParts(parts, "nonexistent", models.SortDesc)
	assert.Equal(t, []float64{3, 1, 2}, pricesOf(parts))
}

// Equal keys keep their original relative order in either direction.
func TestSortIsStable(t *testing.T) {
	t.Parallel()
	parts := []models.Part{
		testPart(func(p *models.Part) { p.Price = 100; p.PartNumber = "first" }),
		testPart(func(p *models.Part) { p.Price = 100; p.PartNumber = "second" }),
		testPart(func(p *models.Part) { p.Price = 50; p.PartNumber = "third" }),
		testPart(func(p *models.Part) { p.Price = 100; p.PartNumber = "fourth" }),
	}

	SortParts(parts, "price", models.SortAsc)
	assert.Equal(t, "third", parts[0].PartNumber)
	assert.Equal(t, "first", parts[1].PartNumber)
	assert.Equal(t, "second", parts[2].PartNumber)
	assert.Equal(t, "fourth", parts[3].PartNumber)

	SortParts(parts, "price", models.SortDesc)
	assert.Equal(t, "first", parts[0].PartNumber)
	assert.Equal(t, "second", parts[1].PartNumber)
	assert.Equal(t, "fourth", parts[2].PartNumber)
	assert.Equal(t, "third", parts[3].PartNumber)
}

func TestCompareReviews(t *testing.T) {
	t.Parallel()
	a := testPart(func(p *models.Part) { p.Reviews = 5 })
	b := testPart(func(p *models.Part) { p.Reviews = 50 })
	assert.Equal(t, -1, Compare(a, b, "reviews"))
	assert.Equal(t, 1, Compare(b, a, "reviews"))
	assert.Equal(t, 0, Compare(a, a, "reviews"))
}
