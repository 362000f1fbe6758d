package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/partshub/catalog-service/internal/models"
)

// sortField maps a sort key to a typed accessor so comparisons never rely on
// runtime coercion. Exactly one accessor is set per field.
type sortField struct {
	number func(models.Part) float64
	when   func(models.Part) time.Time
	text   func(models.Part) string
}

var sortFields = map[string]sortField{
	"price":     {number: func(p models.Part) float64 { return p.Price }},
	"reviews":   {number: func(p models.Part) float64 { return float64(p.Reviews) }},
	"createdAt": {when: func(p models.Part) time.Time { return p.CreatedAt }},
	"updatedAt": {when: func(p models.Part) time.Time { return p.UpdatedAt }},

	"title":        {text: func(p models.Part) string { return p.Title }},
	"brand":        {text: func(p models.Part) string { return p.Brand }},
	"category":     {text: func(p models.Part) string { return p.Category }},
	"company":      {text: func(p models.Part) string { return p.Company }},
	"model":        {text: func(p models.Part) string { return p.Model }},
	"partNumber":   {text: func(p models.Part) string { return p.PartNumber }},
	"vehicleType":  {text: func(p models.Part) string { return p.VehicleType }},
	"fuelType":     {text: func(p models.Part) string { return p.FuelType }},
	"transmission": {text: func(p models.Part) string { return p.Transmission }},
	"stockStatus":  {text: func(p models.Part) string { return string(p.StockStatus) }},
}

// Compare orders a and b under sortBy, returning -1, 0 or 1. String fields
// compare case-insensitively. An unknown sort key orders nothing: every pair
// compares equal, so a stable sort leaves the input untouched.
func Compare(a, b models.Part, sortBy string) int {
	field, ok := sortFields[sortBy]
	if !ok {
		return 0
	}
	switch {
	case field.number != nil:
		return compareOrdered(field.number(a), field.number(b))
	case field.when != nil:
		return field.when(a).Compare(field.when(b))
	default:
		return strings.Compare(strings.ToLower(field.text(a)), strings.ToLower(field.text(b)))
	}
}

// SortParts sorts parts in place by sortBy in the given order. The sort is
// stable: equal keys keep their original relative order.
func SortParts(parts []models.Part, sortBy string, order models.SortOrder) {
	desc := order == models.SortDesc
	sort.SliceStable(parts, func(i, j int) bool {
		c := Compare(parts[i], parts[j], sortBy)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareOrdered(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
