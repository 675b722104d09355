package catalog

import (
	"github.com/you-humble/storefront/internal/model"
)

// Action is a catalog transition request. The set is closed.
type Action interface {
	Type() string
	isAction()
}

type (
	SetProductParams   struct{ Patch model.ParamsPatch }
	SetPageNumber      struct{ Patch model.ParamsPatch }
	ResetProductParams struct{}
	SetMetaData        struct{ MetaData model.MetaData }
	// InvalidateProducts marks the listing outdated after a backend change.
	InvalidateProducts struct{}

	FetchProductsPending   struct{}
	FetchProductsFulfilled struct{ Items []model.Product }
	FetchProductsRejected  struct{ Err error }
	// FetchProductsDiscarded ends a listing whose response was dropped as stale.
	FetchProductsDiscarded struct{}

	FetchProductPending   struct{ ID int64 }
	FetchProductFulfilled struct{ Product model.Product }
	FetchProductRejected  struct {
		ID  int64
		Err error
	}

	FetchFiltersPending   struct{}
	FetchFiltersFulfilled struct{ Filters model.Filters }
	FetchFiltersRejected  struct{ Err error }
)

func (SetProductParams) Type() string   { return "catalog/setProductParams" }
func (SetPageNumber) Type() string      { return "catalog/setPageNumber" }
func (ResetProductParams) Type() string { return "catalog/resetProductParams" }
func (SetMetaData) Type() string        { return "catalog/setMetaData" }
func (InvalidateProducts) Type() string { return "catalog/invalidateProducts" }

func (FetchProductsPending) Type() string   { return "catalog/fetchProducts/pending" }
func (FetchProductsFulfilled) Type() string { return "catalog/fetchProducts/fulfilled" }
func (FetchProductsRejected) Type() string  { return "catalog/fetchProducts/rejected" }
func (FetchProductsDiscarded) Type() string { return "catalog/fetchProducts/discarded" }

func (FetchProductPending) Type() string   { return "catalog/fetchProduct/pending" }
func (FetchProductFulfilled) Type() string { return "catalog/fetchProduct/fulfilled" }
func (FetchProductRejected) Type() string  { return "catalog/fetchProduct/rejected" }

func (FetchFiltersPending) Type() string   { return "catalog/fetchFilters/pending" }
func (FetchFiltersFulfilled) Type() string { return "catalog/fetchFilters/fulfilled" }
func (FetchFiltersRejected) Type() string  { return "catalog/fetchFilters/rejected" }

func (SetProductParams) isAction()   {}
func (SetPageNumber) isAction()      {}
func (ResetProductParams) isAction() {}
func (SetMetaData) isAction()        {}
func (InvalidateProducts) isAction() {}

func (FetchProductsPending) isAction()   {}
func (FetchProductsFulfilled) isAction() {}
func (FetchProductsRejected) isAction()  {}
func (FetchProductsDiscarded) isAction() {}

func (FetchProductPending) isAction()   {}
func (FetchProductFulfilled) isAction() {}
func (FetchProductRejected) isAction()  {}

func (FetchFiltersPending) isAction()   {}
func (FetchFiltersFulfilled) isAction() {}
func (FetchFiltersRejected) isAction()  {}
