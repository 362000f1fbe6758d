package models

import "time"

type StockStatus string

const (
	StockStatusInStock      StockStatus = "in-stock"
	StockStatusOutOfStock   StockStatus = "out-of-stock"
	StockStatusPreOrder     StockStatus = "pre-order"
	StockStatusLimitedStock StockStatus = "limited-stock"
)

// PartImages groups the image references shown on listing cards and
// detail pages.
type PartImages struct {
	Thumbnails []string `json:"thumbnails" bson:"thumbnails"`
	Previews   []string `json:"previews" bson:"previews"`
}

// Part is a single catalog entry. Documents are replaced wholesale on
// re-fetch; nothing mutates a Part once it is loaded into browse state.
type Part struct {
	ID              ObjectID           `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Brand           string             `json:"brand" bson:"brand"`
	Category        string             `json:"category" bson:"category"`
	VehicleType     string             `json:"vehicleType" bson:"vehicle_type"`
	Company         string             `json:"company" bson:"company"`
	Model           string             `json:"model" bson:"model"`
	Variant         string             `json:"variant,omitempty" bson:"variant,omitempty"`
	FuelType        string             `json:"fuelType" bson:"fuel_type"`
	Transmission    string             `json:"transmission" bson:"transmission"`
	Specifications  map[string]string  `json:"specifications,omitempty" bson:"specifications,omitempty"`
	StockStatus     StockStatus        `json:"stockStatus" bson:"stock_status"`
	Reviews         int                `json:"reviews" bson:"reviews"`
	Price           float64            `json:"price" bson:"price"`
	DiscountedPrice *float64           `json:"discountedPrice,omitempty" bson:"discounted_price,omitempty"`
	PartNumber      string             `json:"partNumber" bson:"part_number"`
	Warranty        string             `json:"warranty,omitempty" bson:"warranty,omitempty"`
	Images          *PartImages        `json:"imgs,omitempty" bson:"imgs,omitempty"`
	IsActive        bool               `json:"-" bson:"is_active"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at,omitempty"`
}

func (Part) CollectionName() string {
	return "parts"
}

func (p Part) GetObjectID() ObjectID {
	return p.ID
}

func (p Part) GetUpdates() any {
	// update everything except ID and CreatedAt
	p.ID = ""
	p.CreatedAt = time.Time{}
	p.UpdatedAt = time.Now()
	return p
}
