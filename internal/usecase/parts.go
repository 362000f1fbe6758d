package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/partshub/catalog-service/internal/catalog"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/repo/mongodb"
	"github.com/partshub/catalog-service/internal/repo/partsapi"
)

// EventPublisher pushes part-change notifications to interested consumers.
// Satisfied by the kafka producer; a noop implementation is used when the
// broker is disabled.
type EventPublisher interface {
	PublishPartChange(ctx context.Context, event models.PartChangeEvent) error
}

type PartsUsecase interface {
	List(ctx context.Context, query models.ListPartsQuery) (*models.PartListResponse, error)
	Get(ctx context.Context, id string) (*models.Part, error)
	Create(ctx context.Context, req models.PartRequest) (*models.Part, error)
	Update(ctx context.Context, id string, req models.PartRequest) (*models.Part, error)
	Delete(ctx context.Context, id string) error
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	Seed(ctx context.Context) (int, error)
}

type partsUsecase struct {
	partsRepo mongodb.PartsRepo
	publisher EventPublisher
}

func NewPartsUsecase(partsRepo mongodb.PartsRepo, publisher EventPublisher) PartsUsecase {
	return &partsUsecase{
		partsRepo: partsRepo,
		publisher: publisher,
	}
}

const defaultListLimit = 20

func (uc *partsUsecase) List(ctx context.Context, query models.ListPartsQuery) (*models.PartListResponse, error) {
	result, err := uc.partsRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	data := result.Data
	if data == nil {
		data = []models.Part{}
	}
	return &models.PartListResponse{
		Success:    true,
		Data:       data,
		Pagination: catalog.Paginate(int(result.Total), page, limit),
	}, nil
}

func (uc *partsUsecase) Get(ctx context.Context, id string) (*models.Part, error) {
	part, err := uc.partsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return part, nil
}

func (uc *partsUsecase) Create(ctx context.Context, req models.PartRequest) (*models.Part, error) {
	existing, err := uc.partsRepo.FindOne(ctx, bson.M{"part_number": req.PartNumber, "is_active": true})
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check part number: %w", err)
	}
	if existing != nil {
		return nil, models.ErrDuplicatePart
	}

	part := partFromRequest(req)
	part.ID = models.NewObjectID()
	now := time.Now()
	part.CreatedAt = now
	part.UpdatedAt = now

	if _, err := uc.partsRepo.Insert(ctx, part); err != nil {
		return nil, fmt.Errorf("insert part: %w", err)
	}

	uc.publish(ctx, part.ID.String(), models.PartCreated)
	return &part, nil
}

func (uc *partsUsecase) Update(ctx context.Context, id string, req models.PartRequest) (*models.Part, error) {
	if !models.ObjectID(id).IsValid() {
		return nil, models.ErrNotFound
	}
	part := partFromRequest(req)
	updated, err := uc.partsRepo.UpdateOne(ctx, bson.M{"_id": models.ObjectID(id), "is_active": true}, part)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, id, models.PartUpdated)
	return updated, nil
}

func (uc *partsUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.partsRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.publish(ctx, id, models.PartDeleted)
	return nil
}

func (uc *partsUsecase) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return uc.partsRepo.FilterOptions(ctx)
}

// Seed replaces the whole catalog with the bundled dataset. Mainly for
// fresh environments and demos.
func (uc *partsUsecase) Seed(ctx context.Context) (int, error) {
	parts, err := partsapi.FallbackParts()
	if err != nil {
		return 0, fmt.Errorf("load seed data: %w", err)
	}

	// bundled entries carry slug ids that are not valid document ids
	for i := range parts {
		parts[i].ID = models.NewObjectID()
	}

	if err := uc.partsRepo.ReplaceAll(ctx, parts); err != nil {
		return 0, err
	}

	log.Infof(ctx, "Seeded catalog with %d parts", len(parts))
	uc.publish(ctx, "", models.PartUpdated)
	return len(parts), nil
}

// publish is best-effort: catalog writes must not fail because the broker
// is down.
func (uc *partsUsecase) publish(ctx context.Context, partID string, action models.PartChangeAction) {
	event := models.PartChangeEvent{
		Pattern: models.PartChangedPattern,
		Data: models.PartChangeData{
			PartID:    partID,
			Action:    action,
			ChangedAt: time.Now(),
		},
	}
	if err := uc.publisher.PublishPartChange(ctx, event); err != nil {
		log.Warnf(ctx, "Failed to publish part change event: %v", err)
	}
}

func partFromRequest(req models.PartRequest) models.Part {
	stock := req.StockStatus
	if stock == "" {
		stock = models.StockStatusInStock
	}
	return models.Part{
		Title:           req.Title,
		Brand:           req.Brand,
		Category:        req.Category,
		VehicleType:     req.VehicleType,
		Company:         req.Company,
		Model:           req.Model,
		Variant:         req.Variant,
		FuelType:        req.FuelType,
		Transmission:    req.Transmission,
		Specifications:  req.Specifications,
		StockStatus:     stock,
		Reviews:         req.Reviews,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		PartNumber:      req.PartNumber,
		Warranty:        req.Warranty,
		Images:          req.Images,
		IsActive:        true,
	}
}
