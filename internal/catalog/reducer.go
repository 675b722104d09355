package catalog

// Reduce returns the state that follows s after a. s is not modified.
// Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetProductParams:
		s.Params = MergeParams(s.Params, a.Patch)
		s.Params.PageNumber = 1
		s.ProductsLoaded = false
		s.ParamsVersion++

	case SetPageNumber:
		s.Params = MergeParams(s.Params, a.Patch)
		s.ProductsLoaded = false
		s.ParamsVersion++

	case ResetProductParams:
		s.Params = s.Defaults.Clone()
		s.ProductsLoaded = false
		s.ParamsVersion++

	case InvalidateProducts:
		s.ProductsLoaded = false

	case SetMetaData:
		md := a.MetaData
		s.MetaData = &md

	case FetchProductsPending:
		s.Status = StatusPendingFetchProducts
		s.Errors.Products = nil

	case FetchProductsFulfilled:
		s.Products = s.Products.ReplaceAll(a.Items)
		s.ListingIDs = s.Products.IDs()
		s.ProductsLoaded = true
		s.Status = StatusIdle

	case FetchProductsRejected:
		s.Status = StatusIdle
		s.Errors.Products = a.Err

	case FetchProductsDiscarded:
		s.Status = StatusIdle

	case FetchProductPending:
		s.Status = StatusPendingFetchProduct
		s.Errors.Product = nil

	case FetchProductFulfilled:
		s.Products = s.Products.UpsertOne(a.Product)
		s.Status = StatusIdle

	case FetchProductRejected:
		s.Status = StatusIdle
		s.Errors.Product = a.Err

	case FetchFiltersPending:
		s.Status = StatusPendingFetchFilters
		s.Errors.Filters = nil

	case FetchFiltersFulfilled:
		s.Brands = append([]string{}, a.Filters.Brands...)
		s.Types = append([]string{}, a.Filters.Types...)
		s.FiltersLoaded = true
		s.Status = StatusIdle

	case FetchFiltersRejected:
		s.Status = StatusIdle
		s.Errors.Filters = a.Err
	}

	return s
}
