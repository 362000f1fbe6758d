package partsapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
)

//go:embed fallback_data.json
var fallbackData []byte

// fallbackEntry is the simplified record shape of the bundled dataset.
type fallbackEntry struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice"`
	Image          string            `json:"image"`
	InStock        bool              `json:"inStock"`
	Reviews        int               `json:"reviews"`
	Specifications map[string]string `json:"specifications"`
}

// FallbackParts decodes the bundled dataset into full catalog parts.
// Fields the simplified records lack get fixed defaults so the result
// satisfies the same shape as a live listing response.
func FallbackParts() ([]models.Part, error) {
	var entries []fallbackEntry
	if err := json.Unmarshal(fallbackData, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode bundled dataset: %w", err)
	}

	now := time.Now()
	parts := make([]models.Part, 0, len(entries))
	for _, e := range entries {
		stock := models.StockStatusInStock
		if !e.InStock {
			stock = models.StockStatusOutOfStock
		}
		parts = append(parts, models.Part{
			ID:              models.ObjectID(e.ID),
			Title:           e.Name,
			Brand:           e.Brand,
			Category:        e.Category,
			VehicleType:     "Car",
			Company:         e.Brand,
			Model:           modelFromName(e.Name),
			Variant:         "Standard",
			FuelType:        "Petrol",
			Transmission:    "Manual",
			Specifications:  e.Specifications,
			StockStatus:     stock,
			Reviews:         e.Reviews,
			Price:           e.Price,
			DiscountedPrice: util.Ptr(e.OriginalPrice),
			PartNumber:      strings.ToUpper(e.ID),
			Warranty:        "1 Year",
			Images: &models.PartImages{
				Thumbnails: []string{e.Image},
				Previews:   []string{e.Image},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return parts, nil
}

// modelFromName squashes the first two words of a product name into a
// pseudo model string, e.g. "Castrol GTX 20W50 ..." -> "CastrolGTX".
func modelFromName(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, "")
}
