package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/you-humble/storefront/internal/catalog"
	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/platform/logger"
)

// Listener observes every transition of a Store. It runs while the store
// lock is held and must not call back into the store.
type Listener func(a catalog.Action, s catalog.State)

// Store is the only writer of one session's catalog state. Fetches run
// outside the lock; their completions are applied only when they are still
// the latest request of their kind. Concurrent reads of the same listing,
// product or facets share one backend call.
type Store struct {
	client  CatalogClient
	flights singleflight.Group

	mu        sync.Mutex
	state     catalog.State
	listeners map[uint64]Listener
	nextID    uint64

	listToken    uuid.UUID
	listCancel   context.CancelFunc
	filtersToken uuid.UUID
	productToken map[int64]uuid.UUID
}

func NewStore(client CatalogClient, defaults model.ProductParams) *Store {
	return &Store{
		client:       client,
		state:        catalog.InitialState(defaults),
		listeners:    make(map[uint64]Listener),
		productToken: make(map[int64]uuid.UUID),
	}
}

// State returns a snapshot. Later transitions do not alter it.
func (s *Store) State() catalog.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) SetProductParams(patch model.ParamsPatch) (catalog.State, error) {
	const op = "catalog.store.SetProductParams"

	if err := catalog.ValidatePatch(patch); err != nil {
		return catalog.State{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelListLocked()
	s.dispatchLocked(catalog.SetProductParams{Patch: patch})

	return s.state, nil
}

func (s *Store) SetPageNumber(patch model.ParamsPatch) (catalog.State, error) {
	const op = "catalog.store.SetPageNumber"

	if err := catalog.ValidatePatch(patch); err != nil {
		return catalog.State{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelListLocked()
	s.dispatchLocked(catalog.SetPageNumber{Patch: patch})

	return s.state, nil
}

func (s *Store) ResetProductParams() catalog.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelListLocked()
	s.dispatchLocked(catalog.ResetProductParams{})

	return s.state
}

// InvalidateProducts marks the listing outdated so the next read refetches it.
func (s *Store) InvalidateProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatchLocked(catalog.InvalidateProducts{})
}

// FetchProducts loads the page described by the current params. Callers
// asking for the same params version join the listing already in flight.
// A params change while in flight makes the result stale: it is dropped and
// model.ErrStaleResponse is returned.
func (s *Store) FetchProducts(ctx context.Context) (catalog.State, error) {
	const op = "catalog.store.FetchProducts"

	s.mu.Lock()
	key := "products:" + strconv.FormatUint(s.state.ParamsVersion, 10)
	s.mu.Unlock()

	v, err := s.join(ctx, op, key, func(flightCtx context.Context) (any, error) {
		return s.fetchProducts(flightCtx)
	})
	if err != nil {
		return catalog.State{}, err
	}

	return v.(catalog.State), nil
}

func (s *Store) fetchProducts(ctx context.Context) (catalog.State, error) {
	const op = "catalog.store.FetchProducts"

	s.mu.Lock()
	s.cancelListLocked()
	ctx, cancel := context.WithCancel(ctx)
	token := uuid.New()
	s.listToken = token
	s.listCancel = cancel
	params := s.state.Params.Clone()
	version := s.state.ParamsVersion
	s.dispatchLocked(catalog.FetchProductsPending{})
	s.mu.Unlock()

	defer cancel()

	list, err := s.client.ListProducts(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.With(
		logger.String("op", op),
		logger.String("request_token", token.String()),
		logger.Int("page_number", params.PageNumber),
	)

	if s.listToken != token {
		log.Debug(ctx, "listing superseded, response dropped")
		return catalog.State{}, fmt.Errorf("%s: %w", op, model.ErrStaleResponse)
	}
	s.listToken = uuid.Nil
	s.listCancel = nil

	if s.state.ParamsVersion != version {
		s.dispatchLocked(catalog.FetchProductsDiscarded{})
		log.Debug(ctx, "params changed while in flight, response dropped")
		return catalog.State{}, fmt.Errorf("%s: %w", op, model.ErrStaleResponse)
	}

	if err != nil {
		s.dispatchLocked(catalog.FetchProductsRejected{Err: err})
		log.Error(ctx, "fetch products", logger.ErrorF(err))
		return catalog.State{}, fmt.Errorf("%s: %w", op, err)
	}

	s.dispatchLocked(catalog.SetMetaData{MetaData: list.MetaData})
	s.dispatchLocked(catalog.FetchProductsFulfilled{Items: list.Items})

	return s.state, nil
}

// FetchProduct loads one product and upserts it into the cache.
func (s *Store) FetchProduct(ctx context.Context, id int64) (model.Product, error) {
	const op = "catalog.store.FetchProduct"

	if id <= 0 {
		return model.Product{}, fmt.Errorf("%s: %w: product id must be positive", op, model.ErrValidation)
	}

	v, err := s.join(ctx, op, "product:"+strconv.FormatInt(id, 10), func(flightCtx context.Context) (any, error) {
		return s.fetchProduct(flightCtx, id)
	})
	if err != nil {
		return model.Product{}, err
	}

	return v.(model.Product), nil
}

func (s *Store) fetchProduct(ctx context.Context, id int64) (model.Product, error) {
	const op = "catalog.store.FetchProduct"

	s.mu.Lock()
	token := uuid.New()
	s.productToken[id] = token
	s.dispatchLocked(catalog.FetchProductPending{ID: id})
	s.mu.Unlock()

	p, err := s.client.Product(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.With(
		logger.String("op", op),
		logger.Int64("product_id", id),
	)

	if s.productToken[id] != token {
		log.Debug(ctx, "product fetch superseded, response dropped")
		return model.Product{}, fmt.Errorf("%s: %w", op, model.ErrStaleResponse)
	}
	delete(s.productToken, id)

	if err != nil {
		s.dispatchLocked(catalog.FetchProductRejected{ID: id, Err: err})
		log.Error(ctx, "fetch product", logger.ErrorF(err))
		return model.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.dispatchLocked(catalog.FetchProductFulfilled{Product: p})

	return p, nil
}

// FetchFilters loads the brand and type facets.
func (s *Store) FetchFilters(ctx context.Context) (model.Filters, error) {
	const op = "catalog.store.FetchFilters"

	v, err := s.join(ctx, op, "filters", func(flightCtx context.Context) (any, error) {
		return s.fetchFilters(flightCtx)
	})
	if err != nil {
		return model.Filters{}, err
	}

	f := v.(model.Filters)

	return model.Filters{
		Brands: append([]string{}, f.Brands...),
		Types:  append([]string{}, f.Types...),
	}, nil
}

func (s *Store) fetchFilters(ctx context.Context) (model.Filters, error) {
	const op = "catalog.store.FetchFilters"

	s.mu.Lock()
	token := uuid.New()
	s.filtersToken = token
	s.dispatchLocked(catalog.FetchFiltersPending{})
	s.mu.Unlock()

	f, err := s.client.Filters(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filtersToken != token {
		return model.Filters{}, fmt.Errorf("%s: %w", op, model.ErrStaleResponse)
	}
	s.filtersToken = uuid.Nil

	if err != nil {
		s.dispatchLocked(catalog.FetchFiltersRejected{Err: err})
		logger.Error(ctx, "fetch filters", logger.String("op", op), logger.ErrorF(err))
		return model.Filters{}, fmt.Errorf("%s: %w", op, err)
	}

	s.dispatchLocked(catalog.FetchFiltersFulfilled{Filters: f})

	return model.Filters{Brands: s.state.Brands, Types: s.state.Types}, nil
}

// join runs fn once per key and hands its result to every caller waiting on
// that key. The shared call ignores the caller's cancellation; it stops on
// the store's own cancellation or the client timeout.
func (s *Store) join(
	ctx context.Context,
	op string,
	key string,
	fn func(ctx context.Context) (any, error),
) (any, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan(key, func() (any, error) {
		return fn(flightCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func (s *Store) dispatchLocked(a catalog.Action) {
	s.state = catalog.Reduce(s.state, a)
	for _, fn := range s.listeners {
		fn(a, s.state)
	}
}

// cancelListLocked aborts the in-flight listing. Its completion will find
// its token replaced or the params version moved and report stale.
func (s *Store) cancelListLocked() {
	if s.listCancel != nil {
		s.listCancel()
		s.listCancel = nil
	}
}
