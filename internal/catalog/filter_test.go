package catalog

import (
	"testing"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	t.Parallel()
	part := testPart(func(p *models.Part) {
		p.Title = "Hyundai Creta Brake Pad Set"
		p.Brand = "Hyundai"
		p.Company = "Hyundai"
		p.Model = "Creta2017"
		p.PartNumber = "CRETA-BRKPAD-2024"
	})

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"empty search passes vacuously", "", true},
		{"matches title substring", "brake pad", true},
		{"case insensitive", "CRETA", true},
		{"matches part number", "brkpad-2024", true},
		{"matches model", "creta2017", true},
		{"no match", "radiator", false},
		{"whitespace only passes", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := models.DefaultPartFilters()
			filters.Search = tt.search
			assert.Equal(t, tt.want, Matches(part, filters))
		})
	}
}

func TestMatchesSetFilters(t *testing.T) {
	t.Parallel()
	hyundaiBrakes := testPart(func(p *models.Part) {
		p.Company = "Hyundai"
		p.Category = "Braking System"
	})
	boschEngine := testPart(func(p *models.Part) {
		p.Company = "Bosch"
		p.Category = "Engine Components"
	})
	hyundaiEngine := testPart(func(p *models.Part) {
		p.Company = "Hyundai"
		p.Category = "Engine Components"
	})

	filters := models.DefaultPartFilters()
	filters.Companies = []string{"Hyundai"}
	filters.Categories = []string{"Braking System"}

	// both criteria must hold
	assert.True(t, Matches(hyundaiBrakes, filters))
	assert.False(t, Matches(boschEngine, filters))
	assert.False(t, Matches(hyundaiEngine, filters))

	// membership within one set is ORed
	filters.Companies = []string{"Hyundai", "Bosch"}
	filters.Categories = nil
	assert.True(t, Matches(hyundaiEngine, filters))
	assert.True(t, Matches(boschEngine, filters))
}

func TestMatchesStockAndPrice(t *testing.T) {
	t.Parallel()
	part := testPart(func(p *models.Part) {
		p.Price = 750
		p.StockStatus = models.StockStatusLimitedStock
	})

	filters := models.DefaultPartFilters()
	assert.True(t, Matches(part, filters))

	filters.StockStatus = models.StockStatusInStock
	assert.False(t, Matches(part, filters))
	filters.StockStatus = models.StockStatusLimitedStock
	assert.True(t, Matches(part, filters))

	filters.MinPrice = util.Ptr(750.0)
	assert.True(t, Matches(part, filters), "min bound is inclusive")
	filters.MinPrice = util.Ptr(751.0)
	assert.False(t, Matches(part, filters))

	filters.MinPrice = nil
	filters.MaxPrice = util.Ptr(750.0)
	assert.True(t, Matches(part, filters), "max bound is inclusive")
	filters.MaxPrice = util.Ptr(749.0)
	assert.False(t, Matches(part, filters))

	// inverted range yields an empty match set, not an error
	filters.MinPrice = util.Ptr(800.0)
	filters.MaxPrice = util.Ptr(100.0)
	assert.False(t, Matches(part, filters))
}

// Adding a criterion can only shrink the matched set.
func TestFilterCompositionNeverGrows(t *testing.T) {
	t.Parallel()
	parts := []models.Part{
		testPart(func(p *models.Part) { p.Company = "Hyundai"; p.Category = "Braking System"; p.Price = 4200 }),
		testPart(func(p *models.Part) { p.Company = "Bosch"; p.Category = "Lighting"; p.Price = 900 }),
		testPart(func(p *models.Part) { p.Company = "Valeo"; p.Category = "Braking System"; p.Price = 2100 }),
		testPart(func(p *models.Part) { p.Company = "Hyundai"; p.Category = "Engine Components"; p.Price = 6500 }),
	}

	base := models.DefaultPartFilters()
	narrower := base
	narrower.Companies = []string{"Hyundai"}
	narrowest := narrower
	narrowest.Categories = []string{"Braking System"}
	narrowest.MaxPrice = util.Ptr(5000.0)

	n0 := len(FilterParts(parts, base))
	n1 := len(FilterParts(parts, narrower))
	n2 := len(FilterParts(parts, narrowest))
	assert.GreaterOrEqual(t, n0, n1)
	assert.GreaterOrEqual(t, n1, n2)
	assert.Equal(t, 4, n0)
	assert.Equal(t, 2, n1)
	assert.Equal(t, 1, n2)
}

func TestFilterPartsPreservesOrder(t *testing.T) {
	t.Parallel()
	parts := partsWithPrices(10, 20, 30, 40)
	filters := models.DefaultPartFilters()
	filters.MinPrice = util.Ptr(15.0)

	got := FilterParts(parts, filters)
	assert.Equal(t, []float64{20, 30, 40}, pricesOf(got))
}
