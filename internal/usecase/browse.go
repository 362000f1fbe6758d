package usecase

import (
	"context"
	"fmt"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/partshub/catalog-service/internal/catalog"
	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/repo/partsapi"
)

// BrowseUsecase owns the server-side browse sessions. Each session wraps a
// catalog.Session and is loaded from the listing endpoint on creation and
// on refresh; filter, sort and page operations are purely in-memory.
type BrowseUsecase interface {
	CreateSession(ctx context.Context) (string, catalog.State, error)
	GetState(ctx context.Context, sessionID string) (catalog.State, error)
	UpdateFilters(ctx context.Context, sessionID string, req models.BrowseFiltersRequest) (catalog.State, error)
	ClearFilters(ctx context.Context, sessionID string) (catalog.State, error)
	GoToPage(ctx context.Context, sessionID string, page int) (catalog.State, error)
	SelectPart(ctx context.Context, sessionID, partID string) (catalog.State, error)
	Refresh(ctx context.Context, sessionID string) (catalog.State, error)
	RefreshAll(ctx context.Context) error
	CloseSession(ctx context.Context, sessionID string) error
}

type browseUsecase struct {
	fetcher      partsapi.Client
	itemsPerPage int

	mu       sync.RWMutex
	sessions map[string]*catalog.Session
}

func NewBrowseUsecase(cfg *config.Config, fetcher partsapi.Client) BrowseUsecase {
	itemsPerPage := cfg.Catalog.ItemsPerPage
	if itemsPerPage <= 0 {
		itemsPerPage = catalog.DefaultItemsPerPage
	}
	return &browseUsecase{
		fetcher:      fetcher,
		itemsPerPage: itemsPerPage,
		sessions:     make(map[string]*catalog.Session),
	}
}

func (uc *browseUsecase) CreateSession(ctx context.Context) (string, catalog.State, error) {
	session := catalog.NewSession(uc.itemsPerPage)
	id := models.NewObjectID().String()

	uc.mu.Lock()
	uc.sessions[id] = session
	uc.mu.Unlock()

	if err := uc.load(ctx, session); err != nil {
		return "", catalog.State{}, err
	}

	log.Infof(ctx, "Created browse session %s", id)
	return id, session.Snapshot(), nil
}

func (uc *browseUsecase) GetState(ctx context.Context, sessionID string) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}
	return session.Snapshot(), nil
}

func (uc *browseUsecase) UpdateFilters(ctx context.Context, sessionID string, req models.BrowseFiltersRequest) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}

	if req.Search != nil {
		session.SetSearch(*req.Search)
	}
	if req.Companies != nil {
		session.SetCompanies(*req.Companies)
	}
	if req.Categories != nil {
		session.SetCategories(*req.Categories)
	}
	if req.VehicleTypes != nil {
		session.SetVehicleTypes(*req.VehicleTypes)
	}
	if req.FuelTypes != nil {
		session.SetFuelTypes(*req.FuelTypes)
	}
	if req.Transmissions != nil {
		session.SetTransmissions(*req.Transmissions)
	}
	if req.StockStatus != nil {
		session.SetStockStatus(models.StockStatus(*req.StockStatus))
	}
	if req.PriceRange != nil {
		session.SetPriceRange(req.PriceRange.Min, req.PriceRange.Max)
	}
	if req.SortBy != nil || req.SortOrder != nil {
		current := session.Snapshot().Filters
		sortBy := current.SortBy
		order := current.SortOrder
		if req.SortBy != nil {
			sortBy = *req.SortBy
		}
		if req.SortOrder != nil {
			order = models.SortOrder(*req.SortOrder)
		}
		session.SetSort(sortBy, order)
	}

	return session.Snapshot(), nil
}

func (uc *browseUsecase) ClearFilters(ctx context.Context, sessionID string) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}
	session.ClearFilters()
	return session.Snapshot(), nil
}

func (uc *browseUsecase) GoToPage(ctx context.Context, sessionID string, page int) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}
	session.GoToPage(page)
	return session.Snapshot(), nil
}

// SelectPart resolves the part from the session's loaded collection first
// and falls back to the single-part endpoint. Unlike the bulk listing,
// detail fetch failures propagate.
func (uc *browseUsecase) SelectPart(ctx context.Context, sessionID, partID string) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}

	if partID == "" {
		session.SelectPart(nil)
		return session.Snapshot(), nil
	}

	for _, part := range session.Snapshot().AllParts {
		if part.ID.String() == partID {
			session.SelectPart(&part)
			return session.Snapshot(), nil
		}
	}

	part, err := uc.fetcher.FetchByID(ctx, partID)
	if err != nil {
		return catalog.State{}, fmt.Errorf("select part %s: %w", partID, err)
	}
	session.SelectPart(part)
	return session.Snapshot(), nil
}

func (uc *browseUsecase) Refresh(ctx context.Context, sessionID string) (catalog.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return catalog.State{}, err
	}
	if err := uc.load(ctx, session); err != nil {
		return catalog.State{}, err
	}
	return session.Snapshot(), nil
}

// RefreshAll reloads every live session, used when the catalog changes
// underneath them.
func (uc *browseUsecase) RefreshAll(ctx context.Context) error {
	uc.mu.RLock()
	sessions := make([]*catalog.Session, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	uc.mu.RUnlock()

	for _, session := range sessions {
		if err := uc.load(ctx, session); err != nil {
			return err
		}
	}
	log.Infof(ctx, "Refreshed %d browse sessions", len(sessions))
	return nil
}

func (uc *browseUsecase) CloseSession(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[sessionID]; !ok {
		return models.ErrNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

func (uc *browseUsecase) get(sessionID string) (*catalog.Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return session, nil
}

// load runs one fetch cycle against the session. The fetcher already
// degrades to the bundled dataset, so FetchFailed only fires when even
// that is unavailable.
func (uc *browseUsecase) load(ctx context.Context, session *catalog.Session) error {
	gen := session.BeginFetch()
	parts, err := uc.fetcher.FetchAll(ctx)
	if err != nil {
		session.FetchFailed(gen, err)
		return nil
	}
	session.FetchSucceeded(gen, parts)
	return nil
}
