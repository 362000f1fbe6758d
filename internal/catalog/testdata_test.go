package catalog

import (
	"fmt"
	"time"

	"github.com/partshub/catalog-service/internal/models"
)

func testPart(mut func(*models.Part)) models.Part {
	p := models.Part{
		Title:        "Bosch Spark Plug Set",
		Brand:        "Bosch",
		Category:     "Engine Components",
		VehicleType:  "Car",
		Company:      "Bosch",
		Model:        "Swift2019",
		FuelType:     "Petrol",
		Transmission: "Manual",
		StockStatus:  models.StockStatusInStock,
		Reviews:      10,
		Price:        500,
		PartNumber:   "BOSCH-PLUG-01",
		CreatedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if mut != nil {
		mut(&p)
	}
	return p
}

func partsWithPrices(prices ...float64) []models.Part {
	parts := make([]models.Part, len(prices))
	for i, price := range prices {
		price := price
		parts[i] = testPart(func(p *models.Part) {
			p.Price = price
			p.PartNumber = fmt.Sprintf("PN-%03d", i)
			p.Title = fmt.Sprintf("Part %03d", i)
		})
	}
	return parts
}

func pricesOf(parts []models.Part) []float64 {
	out := make([]float64, len(parts))
	for i, p := range parts {
		out[i] = p.Price
	}
	return out
}
