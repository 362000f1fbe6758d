package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/pkg/util"
)

type fakeFetcher struct {
	parts   []models.Part
	fetches int
	err     error
	byID    map[string]*models.Part
}

func (f *fakeFetcher) FetchAll(ctx context.Context) ([]models.Part, error) {
	f.fetches++
	return f.parts, f.err
}

func (f *fakeFetcher) FetchByID(ctx context.Context, id string) (*models.Part, error) {
	if part, ok := f.byID[id]; ok {
		return part, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeFetcher) FetchFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return &models.FilterOptions{}, nil
}

func browseParts() []models.Part {
	return []models.Part{
		{ID: "a1", Title: "Brake Pads", Company: "Bosch", Category: "Brakes", Price: 1200},
		{ID: "a2", Title: "Oil Filter", Company: "Mann", Category: "Filters", Price: 350},
		{ID: "a3", Title: "Air Filter", Company: "Bosch", Category: "Filters", Price: 500},
	}
}

func newBrowseForTest(fetcher *fakeFetcher, itemsPerPage int) BrowseUsecase {
	conf := &config.Config{}
	conf.Catalog.ItemsPerPage = itemsPerPage
	return NewBrowseUsecase(conf, fetcher)
}

func TestCreateSessionLoadsCatalog(t *testing.T) {
	fetcher := &fakeFetcher{parts: browseParts()}
	uc := newBrowseForTest(fetcher, 2)

	id, state, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, 1, fetcher.fetches)
	assert.Len(t, state.AllParts, 3)
	assert.Len(t, state.DisplayedParts, 2)
	assert.Equal(t, 2, state.Pagination.TotalPages)
	assert.False(t, state.Loading)
}

func TestUpdateFiltersIsPartial(t *testing.T) {
	fetcher := &fakeFetcher{parts: browseParts()}
	uc := newBrowseForTest(fetcher, 9)

	id, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := uc.UpdateFilters(context.Background(), id, models.BrowseFiltersRequest{
		Companies: util.Ptr([]string{"Bosch"}),
	})
	require.NoError(t, err)
	assert.Len(t, state.FilteredParts, 2)

	// untouched fields survive the next update
	state, err = uc.UpdateFilters(context.Background(), id, models.BrowseFiltersRequest{
		Categories: util.Ptr([]string{"Filters"}),
	})
	require.NoError(t, err)
	require.Len(t, state.FilteredParts, 1)
	assert.Equal(t, "Air Filter", state.FilteredParts[0].Title)

	state, err = uc.ClearFilters(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.FilteredParts, 3)
}

func TestUpdateFiltersMergesSortWithCurrent(t *testing.T) {
	fetcher := &fakeFetcher{parts: browseParts()}
	uc := newBrowseForTest(fetcher, 9)

	id, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := uc.UpdateFilters(context.Background(), id, models.BrowseFiltersRequest{
		SortBy:    util.Ptr("price"),
		SortOrder: util.Ptr("desc"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, state.FilteredParts)
	assert.Equal(t, "Brake Pads", state.FilteredParts[0].Title)

	// order alone keeps the current sort field
	state, err = uc.UpdateFilters(context.Background(), id, models.BrowseFiltersRequest{
		SortOrder: util.Ptr("asc"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oil Filter", state.FilteredParts[0].Title)
	assert.Equal(t, "price", state.Filters.SortBy)
}

func TestSelectPartPrefersLoadedCollection(t *testing.T) {
	fetcher := &fakeFetcher{
		parts: browseParts(),
		byID:  map[string]*models.Part{"z9": {ID: "z9", Title: "Radiator"}},
	}
	uc := newBrowseForTest(fetcher, 9)

	id, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := uc.SelectPart(context.Background(), id, "a2")
	require.NoError(t, err)
	require.NotNil(t, state.SelectedPart)
	assert.Equal(t, "Oil Filter", state.SelectedPart.Title)

	state, err = uc.SelectPart(context.Background(), id, "z9")
	require.NoError(t, err)
	require.NotNil(t, state.SelectedPart)
	assert.Equal(t, "Radiator", state.SelectedPart.Title)

	_, err = uc.SelectPart(context.Background(), id, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	state, err = uc.SelectPart(context.Background(), id, "")
	require.NoError(t, err)
	assert.Nil(t, state.SelectedPart)
}

func TestRefreshAllReloadsEverySession(t *testing.T) {
	fetcher := &fakeFetcher{parts: browseParts()}
	uc := newBrowseForTest(fetcher, 9)

	id1, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	id2, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	fetcher.parts = browseParts()[:1]
	require.NoError(t, uc.RefreshAll(context.Background()))
	assert.Equal(t, 4, fetcher.fetches)

	for _, id := range []string{id1, id2} {
		state, err := uc.GetState(context.Background(), id)
		require.NoError(t, err)
		assert.Len(t, state.AllParts, 1)
	}
}

func TestFetchFailureSurfacesOnState(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("listing endpoint down")}
	uc := newBrowseForTest(fetcher, 9)

	id, state, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Empty(t, state.AllParts)
	assert.Contains(t, state.Error, "listing endpoint down")
}

func TestCloseSession(t *testing.T) {
	fetcher := &fakeFetcher{parts: browseParts()}
	uc := newBrowseForTest(fetcher, 9)

	id, _, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, uc.CloseSession(context.Background(), id))
	assert.ErrorIs(t, uc.CloseSession(context.Background(), id), models.ErrNotFound)

	_, err = uc.GetState(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
