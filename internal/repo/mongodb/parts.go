package mongodb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/partshub/catalog-service/internal/models"
)

type PartsRepo interface {
	IRepository[models.Part]
	List(ctx context.Context, query models.ListPartsQuery) (*PaginateWithTotal[models.Part], error)
	SoftDelete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, parts []models.Part) error
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type partsRepo struct {
	baseRepo[models.Part]
}

func NewPartsRepo(dbc *mongo.Database) PartsRepo {
	return &partsRepo{
		baseRepo: newBaseRepo[models.Part](dbc),
	}
}

// sortFields maps API sort keys onto document field names.
var sortFields = map[string]string{
	"title":        "title",
	"brand":        "brand",
	"category":     "category",
	"company":      "company",
	"model":        "model",
	"partNumber":   "part_number",
	"vehicleType":  "vehicle_type",
	"fuelType":     "fuel_type",
	"transmission": "transmission",
	"stockStatus":  "stock_status",
	"price":        "price",
	"reviews":      "reviews",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

func (r *partsRepo) List(ctx context.Context, query models.ListPartsQuery) (*PaginateWithTotal[models.Part], error) {
	filter := bson.M{"is_active": true}

	if query.Search != "" {
		regex := bson.M{"$regex": query.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"brand": regex},
			{"category": regex},
			{"company": regex},
			{"model": regex},
			{"part_number": regex},
		}
	}

	setFilter(filter, "company", query.Company)
	setFilter(filter, "category", query.Category)
	setFilter(filter, "vehicle_type", query.VehicleType)
	setFilter(filter, "fuel_type", query.FuelType)
	setFilter(filter, "transmission", query.Transmission)

	if query.StockStatus != "" {
		filter["stock_status"] = query.StockStatus
	}

	price := bson.M{}
	if v, err := strconv.ParseFloat(query.MinPrice, 64); err == nil {
		price["$gte"] = v
	}
	if v, err := strconv.ParseFloat(query.MaxPrice, 64); err == nil {
		price["$lte"] = v
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	sortBy, ok := sortFields[query.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	order := -1
	if query.SortOrder == "asc" {
		order = 1
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	findOpts := options.Find().SetSort(bson.D{{Key: sortBy, Value: order}})
	return r.PaginateWithTotal(ctx, filter, int64(limit), int64(page-1)*int64(limit), findOpts)
}

// setFilter adds an $in constraint for a comma-separated value list.
func setFilter(filter bson.M, field, raw string) {
	if raw == "" {
		return
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	filter[field] = bson.M{"$in": values}
}

func (r *partsRepo) SoftDelete(ctx context.Context, id string) error {
	if !primitive.IsValidObjectID(id) {
		return models.ErrNotFound
	}
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": models.ObjectID(id), "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("soft delete part: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the whole catalog in one pass, used by the seeder.
func (r *partsRepo) ReplaceAll(ctx context.Context, parts []models.Part) error {
	if _, err := r.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear parts: %w", err)
	}
	if len(parts) == 0 {
		return nil
	}
	if _, err := r.InsertMany(ctx, parts); err != nil {
		return fmt.Errorf("seed parts: %w", err)
	}
	return nil
}

// FilterOptions aggregates per-field counts for the storefront sidebar.
func (r *partsRepo) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	group, ctx := errgroup.WithContext(ctx)
	var out models.FilterOptions

	group.Go(func() (err error) {
		out.Companies, err = r.countByField(ctx, "company")
		return err
	})
	group.Go(func() (err error) {
		out.Categories, err = r.countByField(ctx, "category")
		return err
	})
	group.Go(func() (err error) {
		out.VehicleTypes, err = r.countByField(ctx, "vehicle_type")
		return err
	})
	group.Go(func() (err error) {
		out.FuelTypes, err = r.countByField(ctx, "fuel_type")
		return err
	})
	group.Go(func() error {
		values, err := r.coll.Distinct(ctx, "transmission", bson.M{"is_active": true})
		if err != nil {
			return fmt.Errorf("distinct transmissions: %w", err)
		}
		out.Transmissions = make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.(string); ok {
				out.Transmissions = append(out.Transmissions, s)
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *partsRepo) countByField(ctx context.Context, field string) ([]models.FilterOptionCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s counts: %w", field, err)
	}
	var counts []models.FilterOptionCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode %s counts: %w", field, err)
	}
	return counts, nil
}
