package models

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PartFilters is the full set of active search/filter/sort criteria for a
// browse session. Set-valued criteria are ORed internally and ANDed with
// each other; an empty set means "no constraint".
type PartFilters struct {
	Search        string      `json:"search"`
	Companies     []string    `json:"companies"`
	Categories    []string    `json:"categories"`
	VehicleTypes  []string    `json:"vehicleTypes"`
	FuelTypes     []string    `json:"fuelTypes"`
	Transmissions []string    `json:"transmissions"`
	StockStatus   StockStatus `json:"stockStatus"`
	MinPrice      *float64    `json:"minPrice"`
	MaxPrice      *float64    `json:"maxPrice"`
	SortBy        string      `json:"sortBy"`
	SortOrder     SortOrder   `json:"sortOrder"`
}

// DefaultPartFilters is the empty specification: no constraints, newest first.
func DefaultPartFilters() PartFilters {
	return PartFilters{
		SortBy:    "createdAt",
		SortOrder: SortDesc,
	}
}

// PaginationInfo is derived state; it is never mutated independently of the
// filtered collection it was computed from.
type PaginationInfo struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// FilterOptionCount is one aggregate bucket for the filter sidebar.
type FilterOptionCount struct {
	Name  string `json:"name" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// FilterOptions carries the per-field aggregate counts used to populate the
// storefront filter UI. Advisory only; browse correctness never depends on it.
type FilterOptions struct {
	Companies     []FilterOptionCount `json:"companies"`
	Categories    []FilterOptionCount `json:"categories"`
	VehicleTypes  []FilterOptionCount `json:"vehicleTypes"`
	FuelTypes     []FilterOptionCount `json:"fuelTypes"`
	Transmissions []string            `json:"transmissions"`
}
