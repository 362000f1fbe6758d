package models

// ListPartsQuery captures the query string of the listing endpoint. Set-valued
// filters arrive comma-separated (company=Bosch,Valeo).
type ListPartsQuery struct {
	Search       string `query:"search"`
	Company      string `query:"company"`
	Category     string `query:"category"`
	VehicleType  string `query:"vehicleType"`
	FuelType     string `query:"fuelType"`
	Transmission string `query:"transmission"`
	StockStatus  string `query:"stockStatus" validate:"omitempty,oneof=in-stock out-of-stock pre-order limited-stock"`
	MinPrice     string `query:"minPrice" validate:"omitempty,numeric"`
	MaxPrice     string `query:"maxPrice" validate:"omitempty,numeric"`
	SortBy       string `query:"sortBy"`
	SortOrder    string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Limit        int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// PartRequest is the create/update body for catalog writes.
type PartRequest struct {
	Title           string            `json:"title" validate:"required,min=3"`
	Brand           string            `json:"brand" validate:"required"`
	Category        string            `json:"category" validate:"required"`
	VehicleType     string            `json:"vehicleType" validate:"required"`
	Company         string            `json:"company" validate:"required"`
	Model           string            `json:"model" validate:"required"`
	Variant         string            `json:"variant"`
	FuelType        string            `json:"fuelType" validate:"required"`
	Transmission    string            `json:"transmission" validate:"required"`
	Specifications  map[string]string `json:"specifications"`
	StockStatus     StockStatus       `json:"stockStatus" validate:"omitempty,oneof=in-stock out-of-stock pre-order limited-stock"`
	Reviews         int               `json:"reviews" validate:"omitempty,min=0"`
	Price           float64           `json:"price" validate:"required,min=0"`
	DiscountedPrice *float64          `json:"discountedPrice" validate:"omitempty,min=0"`
	PartNumber      string            `json:"partNumber" validate:"required"`
	Warranty        string            `json:"warranty"`
	Images          *PartImages       `json:"imgs"`
}

// PartListResponse is the listing envelope consumed by the storefront and
// by the catalog fetcher.
type PartListResponse struct {
	Success    bool           `json:"success"`
	Data       []Part         `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

type PartResponse struct {
	Success bool   `json:"success"`
	Data    *Part  `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// PriceRange carries optional price bounds for a browse session.
type PriceRange struct {
	Min *float64 `json:"min" validate:"omitempty,min=0"`
	Max *float64 `json:"max" validate:"omitempty,min=0"`
}

// BrowseFiltersRequest is a partial update of a browse session's filter
// specification. Nil fields are left untouched so clients only send what
// changed.
type BrowseFiltersRequest struct {
	Search        *string     `json:"search"`
	Companies     *[]string   `json:"companies"`
	Categories    *[]string   `json:"categories"`
	VehicleTypes  *[]string   `json:"vehicleTypes"`
	FuelTypes     *[]string   `json:"fuelTypes"`
	Transmissions *[]string   `json:"transmissions"`
	StockStatus   *string     `json:"stockStatus" validate:"omitempty,oneof=in-stock out-of-stock pre-order limited-stock"`
	PriceRange    *PriceRange `json:"priceRange"`
	SortBy        *string     `json:"sortBy"`
	SortOrder     *string     `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}
