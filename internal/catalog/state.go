package catalog

import (
	"github.com/you-humble/storefront/internal/model"
)

type LoadStatus string

const (
	StatusIdle                 LoadStatus = "idle"
	StatusPendingFetchProducts LoadStatus = "pendingFetchProducts"
	StatusPendingFetchProduct  LoadStatus = "pendingFetchProduct"
	StatusPendingFetchFilters  LoadStatus = "pendingFetchFilters"
)

// Errors keeps the last failure of each load operation. A field is cleared
// when its operation starts again.
type Errors struct {
	Products error
	Product  error
	Filters  error
}

type State struct {
	Products ProductCache
	// ListingIDs are the ids of the last loaded page in backend order.
	// Detail fetches add to Products but not here.
	ListingIDs     []int64
	ProductsLoaded bool
	FiltersLoaded  bool
	Status         LoadStatus
	Brands         []string
	Types          []string
	Params         model.ProductParams
	MetaData       *model.MetaData
	Errors         Errors

	// Defaults is what ResetProductParams restores.
	Defaults model.ProductParams
	// ParamsVersion changes on every Params transition. A listing
	// requested under an older version is stale.
	ParamsVersion uint64
}

func InitialState(defaults model.ProductParams) State {
	return State{
		Products:   NewProductCache(),
		ListingIDs: []int64{},
		Status:     StatusIdle,
		Brands:     []string{},
		Types:      []string{},
		Params:     defaults.Clone(),
		Defaults:   defaults.Clone(),
	}
}

func (s State) Product(id int64) (model.Product, bool) { return s.Products.ByID(id) }

func (s State) AllProducts() []model.Product { return s.Products.All() }

// Listing returns the products of the last loaded page.
func (s State) Listing() []model.Product {
	items := make([]model.Product, 0, len(s.ListingIDs))
	for _, id := range s.ListingIDs {
		if p, ok := s.Products.ByID(id); ok {
			items = append(items, p)
		}
	}

	return items
}

func (s State) Loading() bool { return s.Status != StatusIdle }
