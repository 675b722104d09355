package catalog

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/storefront/internal/model"
)

func TestInitialState(t *testing.T) {
	t.Parallel()

	s := InitialState(model.DefaultProductParams())

	assert.Equal(t, 1, s.Params.PageNumber)
	assert.Equal(t, 6, s.Params.PageSize)
	assert.Equal(t, "name", s.Params.OrderBy)
	assert.Empty(t, s.Params.SearchTerm)
	assert.Empty(t, s.Params.Brands)
	assert.Empty(t, s.Params.Types)
	assert.False(t, s.ProductsLoaded)
	assert.False(t, s.FiltersLoaded)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Nil(t, s.MetaData)
	assert.Equal(t, 0, s.Products.Len())
}

func TestReduceQueryState(t *testing.T) {
	t.Parallel()

	loadedOnPage3 := func() State {
		s := InitialState(model.DefaultProductParams())
		s = Reduce(s, SetPageNumber{Patch: model.ParamsPatch{PageNumber: lo.ToPtr(3)}})
		s = Reduce(s, FetchProductsFulfilled{Items: []model.Product{fakeProduct(1)}})
		return s
	}

	tests := []struct {
		name   string
		action Action
		assert func(t *testing.T, before, after State)
	}{
		{
			name:   "set params forces first page",
			action: SetProductParams{Patch: model.ParamsPatch{OrderBy: lo.ToPtr("price")}},
			assert: func(t *testing.T, before, after State) {
				assert.Equal(t, 1, after.Params.PageNumber)
				assert.Equal(t, "price", after.Params.OrderBy)
				assert.False(t, after.ProductsLoaded)
				assert.Greater(t, after.ParamsVersion, before.ParamsVersion)
			},
		},
		{
			name:   "set params ignores an explicit page",
			action: SetProductParams{Patch: model.ParamsPatch{PageNumber: lo.ToPtr(5), SearchTerm: lo.ToPtr("red")}},
			assert: func(t *testing.T, _, after State) {
				assert.Equal(t, 1, after.Params.PageNumber)
				assert.Equal(t, "red", after.Params.SearchTerm)
			},
		},
		{
			name:   "set page number keeps the rest",
			action: SetPageNumber{Patch: model.ParamsPatch{PageNumber: lo.ToPtr(4)}},
			assert: func(t *testing.T, before, after State) {
				assert.Equal(t, 4, after.Params.PageNumber)
				assert.Equal(t, before.Params.OrderBy, after.Params.OrderBy)
				assert.False(t, after.ProductsLoaded)
			},
		},
		{
			name:   "invalidate keeps params and cache",
			action: InvalidateProducts{},
			assert: func(t *testing.T, before, after State) {
				assert.False(t, after.ProductsLoaded)
				assert.Equal(t, before.Params, after.Params)
				assert.Equal(t, before.ParamsVersion, after.ParamsVersion)
				assert.Equal(t, before.Products.IDs(), after.Products.IDs())
			},
		},
		{
			name:   "reset restores defaults",
			action: ResetProductParams{},
			assert: func(t *testing.T, before, after State) {
				assert.Equal(t, model.DefaultProductParams(), after.Params)
				assert.False(t, after.ProductsLoaded)
				assert.Equal(t, before.Products.IDs(), after.Products.IDs())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := loadedOnPage3()
			require.True(t, before.ProductsLoaded)

			after := Reduce(before, tt.action)
			tt.assert(t, before, after)

			assert.True(t, before.ProductsLoaded)
			assert.Equal(t, 3, before.Params.PageNumber)
		})
	}
}

func TestReduceFetchProducts(t *testing.T) {
	t.Parallel()

	t.Run("pending sets status", func(t *testing.T) {
		t.Parallel()

		s := Reduce(InitialState(model.DefaultProductParams()), FetchProductsPending{})

		assert.Equal(t, StatusPendingFetchProducts, s.Status)
		assert.True(t, s.Loading())
	})

	t.Run("fulfilled replaces cache", func(t *testing.T) {
		t.Parallel()

		s := InitialState(model.DefaultProductParams())
		s = Reduce(s, FetchProductsFulfilled{Items: []model.Product{fakeProduct(9)}})
		s = Reduce(s, FetchProductsPending{})

		items := []model.Product{fakeProduct(1), fakeProduct(2)}
		s = Reduce(s, SetMetaData{MetaData: model.MetaData{CurrentPage: 1, TotalPages: 1, PageSize: 6, TotalCount: 2}})
		s = Reduce(s, FetchProductsFulfilled{Items: items})

		assert.Equal(t, items, s.AllProducts())
		assert.True(t, s.ProductsLoaded)
		assert.Equal(t, StatusIdle, s.Status)
		require.NotNil(t, s.MetaData)
		assert.Equal(t, 2, s.MetaData.TotalCount)
		assert.Equal(t, 1, s.MetaData.TotalPages)
	})

	t.Run("rejected keeps cache", func(t *testing.T) {
		t.Parallel()

		items := []model.Product{fakeProduct(1), fakeProduct(2)}
		s := InitialState(model.DefaultProductParams())
		s = Reduce(s, FetchProductsFulfilled{Items: items})
		s = Reduce(s, SetProductParams{Patch: model.ParamsPatch{SearchTerm: lo.ToPtr("x")}})
		s = Reduce(s, FetchProductsPending{})

		boom := errors.New("boom")
		s = Reduce(s, FetchProductsRejected{Err: boom})

		assert.Equal(t, items, s.AllProducts())
		assert.Equal(t, StatusIdle, s.Status)
		assert.False(t, s.ProductsLoaded)
		assert.ErrorIs(t, s.Errors.Products, boom)
	})

	t.Run("pending clears last error", func(t *testing.T) {
		t.Parallel()

		s := Reduce(InitialState(model.DefaultProductParams()), FetchProductsRejected{Err: errors.New("boom")})
		s = Reduce(s, FetchProductsPending{})

		assert.NoError(t, s.Errors.Products)
	})

	t.Run("discarded only resets status", func(t *testing.T) {
		t.Parallel()

		s := Reduce(InitialState(model.DefaultProductParams()), FetchProductsPending{})
		s = Reduce(s, FetchProductsDiscarded{})

		assert.Equal(t, StatusIdle, s.Status)
		assert.False(t, s.ProductsLoaded)
		assert.Equal(t, 0, s.Products.Len())
	})
}

func TestReduceFetchProduct(t *testing.T) {
	t.Parallel()

	p1, p2 := fakeProduct(1), fakeProduct(2)
	base := Reduce(InitialState(model.DefaultProductParams()), FetchProductsFulfilled{Items: []model.Product{p1, p2}})

	t.Run("fulfilled upserts without touching loaded flag", func(t *testing.T) {
		t.Parallel()

		s := Reduce(base, SetPageNumber{Patch: model.ParamsPatch{PageNumber: lo.ToPtr(2)}})
		s = Reduce(s, FetchProductPending{ID: 42})
		assert.Equal(t, StatusPendingFetchProduct, s.Status)

		p42 := fakeProduct(42)
		s = Reduce(s, FetchProductFulfilled{Product: p42})

		assert.Equal(t, []int64{1, 2, 42}, s.Products.IDs())
		assert.False(t, s.ProductsLoaded)
		assert.Equal(t, StatusIdle, s.Status)
		got, ok := s.Product(42)
		require.True(t, ok)
		assert.Equal(t, p42, got)
	})

	t.Run("rejected leaves cache", func(t *testing.T) {
		t.Parallel()

		s := Reduce(base, FetchProductPending{ID: 99})
		s = Reduce(s, FetchProductRejected{ID: 99, Err: model.ErrProductNotFound})

		assert.Equal(t, []int64{1, 2}, s.Products.IDs())
		assert.Equal(t, StatusIdle, s.Status)
		assert.ErrorIs(t, s.Errors.Product, model.ErrProductNotFound)
	})
}

func TestReduceFetchFilters(t *testing.T) {
	t.Parallel()

	filters := model.Filters{
		Brands: []string{"Angular", "React"},
		Types:  []string{"Boots", "Gloves"},
	}

	s := Reduce(InitialState(model.DefaultProductParams()), FetchFiltersPending{})
	assert.Equal(t, StatusPendingFetchFilters, s.Status)

	s = Reduce(s, FetchFiltersFulfilled{Filters: filters})
	assert.True(t, s.FiltersLoaded)
	assert.Equal(t, filters.Brands, s.Brands)
	assert.Equal(t, filters.Types, s.Types)
	assert.Equal(t, StatusIdle, s.Status)

	t.Run("facets survive other transitions", func(t *testing.T) {
		t.Parallel()

		after := Reduce(s, ResetProductParams{})
		after = Reduce(after, FetchProductsRejected{Err: errors.New("boom")})
		after = Reduce(after, SetProductParams{Patch: model.ParamsPatch{Brands: []string{"React"}, BrandsSet: true}})

		assert.True(t, after.FiltersLoaded)
		assert.Equal(t, filters.Brands, after.Brands)
		assert.Equal(t, filters.Types, after.Types)
	})

	t.Run("rejected keeps loaded flag false", func(t *testing.T) {
		t.Parallel()

		r := Reduce(InitialState(model.DefaultProductParams()), FetchFiltersRejected{Err: errors.New("down")})

		assert.False(t, r.FiltersLoaded)
		assert.Empty(t, r.Brands)
		assert.Error(t, r.Errors.Filters)
	})
}

func TestReduceListingIgnoresDetailFetch(t *testing.T) {
	t.Parallel()

	page := []model.Product{fakeProduct(1), fakeProduct(2)}
	offPage := fakeProduct(9)

	s := InitialState(model.DefaultProductParams())
	assert.Empty(t, s.Listing())

	s = Reduce(s, FetchProductsFulfilled{Items: page})
	s = Reduce(s, FetchProductFulfilled{Product: offPage})

	assert.Equal(t, 3, s.Products.Len())
	assert.Equal(t, []int64{1, 2}, s.ListingIDs)
	assert.Equal(t, page, s.Listing())

	// a new page replaces the listing and the cache together
	next := []model.Product{fakeProduct(3)}
	s = Reduce(s, FetchProductsFulfilled{Items: next})
	assert.Equal(t, next, s.Listing())
	assert.Equal(t, []int64{3}, s.Products.IDs())
}
