package catalog

import "github.com/partshub/catalog-service/internal/models"

// Paginate derives pagination state for a result set. An empty result set
// still reports one page so callers never see a zero-page state.
func Paginate(totalItems, currentPage, itemsPerPage int) models.PaginationInfo {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	return models.PaginationInfo{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		HasNextPage:  currentPage < totalPages,
		HasPrevPage:  currentPage > 1,
	}
}

// PageSlice returns the items visible on page. Out-of-range pages yield a
// short or empty slice, never an error.
func PageSlice(items []models.Part, page, itemsPerPage int) []models.Part {
	if page < 1 || itemsPerPage < 1 {
		return nil
	}
	start := (page - 1) * itemsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
