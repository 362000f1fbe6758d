package catalog

import (
	"strings"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
)

// Matches reports whether part satisfies every active criterion in filters.
// Criteria are ANDed together; within a set-valued criterion membership is
// ORed. Pure function of its inputs.
func Matches(part models.Part, filters models.PartFilters) bool {
	if term := strings.ToLower(strings.TrimSpace(filters.Search)); term != "" {
		if !anyContainsFold(term,
			part.Title,
			part.Brand,
			part.Company,
			part.Model,
			part.PartNumber,
		) {
			return false
		}
	}

	if len(filters.Companies) > 0 && !util.SliceIncludes(filters.Companies, part.Company) {
		return false
	}
	if len(filters.Categories) > 0 && !util.SliceIncludes(filters.Categories, part.Category) {
		return false
	}
	if len(filters.VehicleTypes) > 0 && !util.SliceIncludes(filters.VehicleTypes, part.VehicleType) {
		return false
	}
	if len(filters.FuelTypes) > 0 && !util.SliceIncludes(filters.FuelTypes, part.FuelType) {
		return false
	}
	if len(filters.Transmissions) > 0 && !util.SliceIncludes(filters.Transmissions, part.Transmission) {
		return false
	}

	if filters.StockStatus != "" && part.StockStatus != filters.StockStatus {
		return false
	}

	if filters.MinPrice != nil && part.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && part.Price > *filters.MaxPrice {
		return false
	}

	return true
}

// FilterParts returns the members of parts that match filters, preserving
// their original order.
func FilterParts(parts []models.Part, filters models.PartFilters) []models.Part {
	filtered := make([]models.Part, 0, len(parts))
	for _, p := range parts {
		if Matches(p, filters) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func anyContainsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
