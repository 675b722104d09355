package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/storefront/internal/catalog"
	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/internal/service/catalog/mocks"
)

func fakeProduct(id int64) model.Product {
	return model.Product{
		ID:              id,
		Name:            gofakeit.ProductName(),
		Description:     gofakeit.Sentence(8),
		Price:           int64(gofakeit.Number(100, 50000)),
		PictureURL:      gofakeit.URL(),
		Type:            gofakeit.ProductCategory(),
		Brand:           gofakeit.Company(),
		QuantityInStock: int64(gofakeit.Number(0, 100)),
	}
}

func testCtx(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestStoreFetchProducts(t *testing.T) {
	t.Parallel()

	items := []model.Product{fakeProduct(1), fakeProduct(2)}
	md := model.MetaData{CurrentPage: 1, TotalPages: 1, PageSize: 6, TotalCount: 2}

	type testCase struct {
		name   string
		setup  func(c *mocks.MockCatalogClient)
		assert func(t *testing.T, s catalog.State, err error, actions []string)
	}

	tests := []testCase{
		{
			name: "success: items cached and meta data recorded before items",
			setup: func(c *mocks.MockCatalogClient) {
				c.On("ListProducts", mock.Anything, model.DefaultProductParams()).
					Return(model.ProductList{Items: items, MetaData: md}, nil).
					Once()
			},
			assert: func(t *testing.T, s catalog.State, err error, actions []string) {
				require.NoError(t, err)
				assert.Equal(t, items, s.AllProducts())
				require.NotNil(t, s.MetaData)
				assert.Equal(t, md, *s.MetaData)
				assert.True(t, s.ProductsLoaded)
				assert.Equal(t, catalog.StatusIdle, s.Status)
				assert.Equal(t, []string{
					catalog.FetchProductsPending{}.Type(),
					catalog.SetMetaData{}.Type(),
					catalog.FetchProductsFulfilled{}.Type(),
				}, actions)
			},
		},
		{
			name: "backend error: cache untouched and status idle",
			setup: func(c *mocks.MockCatalogClient) {
				c.On("ListProducts", mock.Anything, mock.Anything).
					Return(model.ProductList{}, &model.RequestError{
						Op:         "catalog.client.ListProducts",
						StatusCode: http.StatusInternalServerError,
						Payload:    []byte(`{"title":"boom"}`),
					}).
					Once()
			},
			assert: func(t *testing.T, s catalog.State, err error, actions []string) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrRequestFailed)

				var reqErr *model.RequestError
				require.True(t, errors.As(err, &reqErr))
				assert.Equal(t, `{"title":"boom"}`, string(reqErr.Payload))

				assert.NotContains(t, actions, catalog.FetchProductsFulfilled{}.Type())
				assert.Equal(t, 0, s.Products.Len())
				assert.Equal(t, catalog.FetchProductsRejected{}.Type(), actions[len(actions)-1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockCatalogClient(t)
			tt.setup(client)

			st := NewStore(client, model.DefaultProductParams())

			var actions []string
			st.Subscribe(func(a catalog.Action, _ catalog.State) {
				actions = append(actions, a.Type())
			})

			s, err := st.FetchProducts(testCtx(t))
			tt.assert(t, s, err, actions)
		})
	}
}

func TestStoreFetchProductsRejectedKeepsCache(t *testing.T) {
	t.Parallel()

	items := []model.Product{fakeProduct(1), fakeProduct(2)}

	client := mocks.NewMockCatalogClient(t)
	client.On("ListProducts", mock.Anything, mock.Anything).
		Return(model.ProductList{Items: items}, nil).
		Once()
	client.On("ListProducts", mock.Anything, mock.Anything).
		Return(model.ProductList{}, &model.RequestError{Op: "test", StatusCode: http.StatusBadGateway}).
		Once()

	st := NewStore(client, model.DefaultProductParams())

	_, err := st.FetchProducts(testCtx(t))
	require.NoError(t, err)

	_, err = st.SetPageNumber(model.ParamsPatch{PageNumber: lo.ToPtr(2)})
	require.NoError(t, err)

	_, err = st.FetchProducts(testCtx(t))
	require.ErrorIs(t, err, model.ErrRequestFailed)

	s := st.State()
	assert.Equal(t, items, s.AllProducts())
	assert.Equal(t, catalog.StatusIdle, s.Status)
	assert.False(t, s.ProductsLoaded)
	assert.ErrorIs(t, s.Errors.Products, model.ErrRequestFailed)
}

func TestStoreFetchProductsStaleAfterParamsChange(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})

	client := mocks.NewMockCatalogClient(t)
	client.On("ListProducts", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, _ model.ProductParams) (model.ProductList, error) {
			close(started)
			<-ctx.Done()
			return model.ProductList{Items: []model.Product{fakeProduct(1)}}, nil
		}).
		Once()

	st := NewStore(client, model.DefaultProductParams())

	errCh := make(chan error, 1)
	go func() {
		_, err := st.FetchProducts(testCtx(t))
		errCh <- err
	}()

	<-started
	assert.Equal(t, catalog.StatusPendingFetchProducts, st.State().Status)

	_, err := st.SetProductParams(model.ParamsPatch{OrderBy: lo.ToPtr("price")})
	require.NoError(t, err)

	err = <-errCh
	require.ErrorIs(t, err, model.ErrStaleResponse)

	s := st.State()
	assert.Equal(t, 0, s.Products.Len())
	assert.False(t, s.ProductsLoaded)
	assert.Equal(t, catalog.StatusIdle, s.Status)
	assert.Equal(t, "price", s.Params.OrderBy)
	assert.Nil(t, s.MetaData)
}

func TestStoreFetchProductsSuperseded(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	outdated := []model.Product{fakeProduct(1)}
	fresh := []model.Product{fakeProduct(3), fakeProduct(4)}

	client := mocks.NewMockCatalogClient(t)
	client.On("ListProducts", mock.Anything, model.DefaultProductParams()).
		Return(func(context.Context, model.ProductParams) (model.ProductList, error) {
			close(started)
			<-release
			return model.ProductList{Items: outdated}, nil
		}).
		Once()
	client.On("ListProducts", mock.Anything, mock.MatchedBy(func(p model.ProductParams) bool {
		return p.OrderBy == "price"
	})).
		Return(model.ProductList{Items: fresh}, nil).
		Once()

	st := NewStore(client, model.DefaultProductParams())

	errCh := make(chan error, 1)
	go func() {
		_, err := st.FetchProducts(testCtx(t))
		errCh <- err
	}()
	<-started

	_, err := st.SetProductParams(model.ParamsPatch{OrderBy: lo.ToPtr("price")})
	require.NoError(t, err)

	s, err := st.FetchProducts(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, fresh, s.AllProducts())

	close(release)
	require.ErrorIs(t, <-errCh, model.ErrStaleResponse)

	s = st.State()
	assert.Equal(t, fresh, s.AllProducts())
	assert.True(t, s.ProductsLoaded)
	assert.Equal(t, catalog.StatusIdle, s.Status)
	assert.NoError(t, s.Errors.Products)
}

func TestStoreFetchProductsCallerLeavesEarly(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	items := []model.Product{fakeProduct(1), fakeProduct(2)}

	client := mocks.NewMockCatalogClient(t)
	client.On("ListProducts", mock.Anything, model.DefaultProductParams()).
		Return(func(ctx context.Context, _ model.ProductParams) (model.ProductList, error) {
			close(started)
			<-release
			return model.ProductList{Items: items}, ctx.Err()
		}).
		Once()

	st := NewStore(client, model.DefaultProductParams())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := st.FetchProducts(ctx)
		errCh <- err
	}()
	<-started

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	assert.Eventually(t, func() bool {
		return st.State().ProductsLoaded
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, items, st.State().AllProducts())
}

func TestStoreSetParamsValidation(t *testing.T) {
	t.Parallel()

	st := NewStore(mocks.NewMockCatalogClient(t), model.DefaultProductParams())
	before := st.State()

	_, err := st.SetProductParams(model.ParamsPatch{PageSize: lo.ToPtr(0)})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = st.SetPageNumber(model.ParamsPatch{PageNumber: lo.ToPtr(0)})
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Equal(t, before, st.State())
}

func TestStoreFetchProduct(t *testing.T) {
	t.Parallel()

	p := fakeProduct(42)

	client := mocks.NewMockCatalogClient(t)
	client.On("Product", mock.Anything, int64(42)).Return(p, nil).Once()
	client.On("Product", mock.Anything, int64(43)).
		Return(model.Product{}, &model.RequestError{Op: "test", StatusCode: http.StatusNotFound, Err: model.ErrProductNotFound}).
		Once()

	st := NewStore(client, model.DefaultProductParams())

	got, err := st.FetchProduct(testCtx(t), 42)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	cached, ok := st.State().Product(42)
	require.True(t, ok)
	assert.Equal(t, p, cached)

	_, err = st.FetchProduct(testCtx(t), 43)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Equal(t, []int64{42}, st.State().Products.IDs())
	assert.Equal(t, catalog.StatusIdle, st.State().Status)

	_, err = st.FetchProduct(testCtx(t), 0)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestStoreFetchFilters(t *testing.T) {
	t.Parallel()

	f := model.Filters{Brands: []string{"Angular", "React"}, Types: []string{"Boots"}}

	client := mocks.NewMockCatalogClient(t)
	client.On("Filters", mock.Anything).Return(f, nil).Once()

	st := NewStore(client, model.DefaultProductParams())

	got, err := st.FetchFilters(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, f, got)

	s := st.ResetProductParams()
	assert.True(t, s.FiltersLoaded)
	assert.Equal(t, f.Brands, s.Brands)
}

func TestStoreConcurrentReaders(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCatalogClient(t)
	client.On("ListProducts", mock.Anything, mock.Anything).
		Return(model.ProductList{Items: []model.Product{fakeProduct(1)}}, nil)

	st := NewStore(client, model.DefaultProductParams())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = st.FetchProducts(context.Background())
		}()
		go func() {
			defer wg.Done()
			_, _ = st.SetPageNumber(model.ParamsPatch{PageNumber: lo.ToPtr(i + 1)})
			_ = st.State().AllProducts()
		}()
	}
	wg.Wait()

	assert.Equal(t, catalog.StatusIdle, st.State().Status)
}
