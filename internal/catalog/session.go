package catalog

import (
	"slices"
	"sync"

	"github.com/partshub/catalog-service/internal/models"
)

const DefaultItemsPerPage = 9

// State is a read-only snapshot of a browse session, shaped for direct
// serialization to storefront clients.
type State struct {
	AllParts       []models.Part         `json:"allParts"`
	FilteredParts  []models.Part         `json:"filteredParts"`
	DisplayedParts []models.Part         `json:"displayedParts"`
	Filters        models.PartFilters    `json:"filters"`
	Pagination     models.PaginationInfo `json:"pagination"`
	Loading        bool                  `json:"loading"`
	Error          string                `json:"error,omitempty"`
	SelectedPart   *models.Part          `json:"selectedPart,omitempty"`
}

// Session owns the in-memory catalog-browsing state for one storefront
// session: the full collection, the active filters, and everything derived
// from them. Every mutation runs to completion under the session mutex, so
// no caller ever observes a partially updated state.
//
// Derived state is always recomputed in full from the authoritative
// collection. Filter toggles are not monotonic with respect to the previous
// filtered set (switching a category off can both add and remove survivors),
// so incremental patching would have to re-derive correctness anyway.
type Session struct {
	mu           sync.Mutex
	itemsPerPage int
	generation   uint64

	allParts   []models.Part
	filters    models.PartFilters
	filtered   []models.Part
	displayed  []models.Part
	pagination models.PaginationInfo
	loading    bool
	lastError  string
	selected   *models.Part
}

func NewSession(itemsPerPage int) *Session {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &Session{
		itemsPerPage: itemsPerPage,
		filters:      models.DefaultPartFilters(),
		pagination:   Paginate(0, 1, itemsPerPage),
	}
}

// BeginFetch marks the session loading and returns the fetch generation.
// Results delivered with a stale generation are discarded, which resolves
// overlapping fetches in favor of the most recently started one.
func (s *Session) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	s.lastError = ""
	return s.generation
}

// FetchSucceeded replaces the full collection and recomputes all derived
// state under the filters current at resolution time. Returns false if gen
// is stale and the result was discarded.
func (s *Session) FetchSucceeded(gen uint64, parts []models.Part) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.loading = false
	s.lastError = ""
	s.allParts = slices.Clone(parts)
	s.recompute()
	return true
}

// FetchFailed records the error and leaves any previously fetched collection
// in place for display. Returns false if gen is stale.
func (s *Session) FetchFailed(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = "fetch failed"
	}
	return true
}

// SetSearch updates the free-text search term. Like every filter mutation it
// is a no-op when the value is unchanged, and otherwise triggers a full
// recompute landing on page 1.
func (s *Session) SetSearch(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.Search == text {
		return false
	}
	s.filters.Search = text
	s.recompute()
	return true
}

func (s *Session) SetCompanies(companies []string) bool {
	return s.setSetFilter(&s.filters.Companies, companies)
}

func (s *Session) SetCategories(categories []string) bool {
	return s.setSetFilter(&s.filters.Categories, categories)
}

func (s *Session) SetVehicleTypes(vehicleTypes []string) bool {
	return s.setSetFilter(&s.filters.VehicleTypes, vehicleTypes)
}

func (s *Session) SetFuelTypes(fuelTypes []string) bool {
	return s.setSetFilter(&s.filters.FuelTypes, fuelTypes)
}

func (s *Session) SetTransmissions(transmissions []string) bool {
	return s.setSetFilter(&s.filters.Transmissions, transmissions)
}

func (s *Session) SetStockStatus(status models.StockStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.StockStatus == status {
		return false
	}
	s.filters.StockStatus = status
	s.recompute()
	return true
}

func (s *Session) SetPriceRange(min, max *float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if equalFloatPtr(s.filters.MinPrice, min) && equalFloatPtr(s.filters.MaxPrice, max) {
		return false
	}
	s.filters.MinPrice = copyFloatPtr(min)
	s.filters.MaxPrice = copyFloatPtr(max)
	s.recompute()
	return true
}

func (s *Session) SetSort(sortBy string, order models.SortOrder) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.SortBy == sortBy && s.filters.SortOrder == order {
		return false
	}
	s.filters.SortBy = sortBy
	s.filters.SortOrder = order
	s.recompute()
	return true
}

// ClearFilters resets every filter to its empty default and recomputes.
func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.DefaultPartFilters()
	s.recompute()
}

// GoToPage re-slices the already filtered and sorted collection. Pages
// outside [1, totalPages] are clamped; an unchanged page is a no-op.
func (s *Session) GoToPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if page > s.pagination.TotalPages {
		page = s.pagination.TotalPages
	}
	if page == s.pagination.CurrentPage {
		return false
	}
	s.pagination = Paginate(len(s.filtered), page, s.itemsPerPage)
	s.displayed = PageSlice(s.filtered, page, s.itemsPerPage)
	return true
}

func (s *Session) SelectPart(part *models.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if part == nil {
		s.selected = nil
		return
	}
	p := *part
	s.selected = &p
}

// Snapshot returns a copy of the current state. Slices are cloned so callers
// can hold the snapshot across later mutations.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		AllParts:       slices.Clone(s.allParts),
		FilteredParts:  slices.Clone(s.filtered),
		DisplayedParts: slices.Clone(s.displayed),
		Filters:        s.filters,
		Pagination:     s.pagination,
		Loading:        s.loading,
		Error:          s.lastError,
	}
	st.Filters.Companies = slices.Clone(s.filters.Companies)
	st.Filters.Categories = slices.Clone(s.filters.Categories)
	st.Filters.VehicleTypes = slices.Clone(s.filters.VehicleTypes)
	st.Filters.FuelTypes = slices.Clone(s.filters.FuelTypes)
	st.Filters.Transmissions = slices.Clone(s.filters.Transmissions)
	if s.selected != nil {
		p := *s.selected
		st.SelectedPart = &p
	}
	return st
}

func (s *Session) setSetFilter(dst *[]string, values []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Equal(*dst, values) {
		return false
	}
	*dst = slices.Clone(values)
	s.recompute()
	return true
}

// recompute rebuilds all derived state from the full collection and resets
// to page 1. Callers hold the mutex.
func (s *Session) recompute() {
	s.filtered = FilterParts(s.allParts, s.filters)
	SortParts(s.filtered, s.filters.SortBy, s.filters.SortOrder)
	s.pagination = Paginate(len(s.filtered), 1, s.itemsPerPage)
	s.displayed = PageSlice(s.filtered, 1, s.itemsPerPage)
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
