package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/storefront/internal/catalog"
	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/platform/logger"
)

type CatalogClient interface {
	ListProducts(ctx context.Context, params model.ProductParams) (model.ProductList, error)
	Product(ctx context.Context, id int64) (model.Product, error)
	Filters(ctx context.Context) (model.Filters, error)
}

type session struct {
	store    *Store
	lastSeen atomic.Int64
}

type service struct {
	client        CatalogClient
	defaults      model.ProductParams
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewCatalogService(
	client CatalogClient,
	defaults model.ProductParams,
	ttl time.Duration,
	sweepInterval time.Duration,
) *service {
	return &service{
		client:        client,
		defaults:      defaults.Clone(),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		now:           time.Now,
		sessions:      make(map[uuid.UUID]*session),
	}
}

// NewSession opens a catalog session with default params.
func (svc *service) NewSession(ctx context.Context) uuid.UUID {
	id := uuid.New()
	st := NewStore(svc.client, svc.defaults)

	log := logger.With(logger.String("session_id", id.String()))
	logCtx := context.WithoutCancel(ctx)
	st.Subscribe(func(a catalog.Action, s catalog.State) {
		log.Debug(logCtx, "catalog transition",
			logger.String("action", a.Type()),
			logger.String("status", string(s.Status)),
			logger.Bool("products_loaded", s.ProductsLoaded),
		)
	})

	sess := &session{store: st}
	sess.lastSeen.Store(svc.now().UnixNano())

	svc.mu.Lock()
	svc.sessions[id] = sess
	svc.mu.Unlock()

	log.Info(ctx, "session opened")

	return id
}

// Store returns the session's store and marks the session as used.
func (svc *service) Store(id uuid.UUID) (*Store, error) {
	const op = "catalog.service.Store"

	svc.mu.RLock()
	sess, ok := svc.sessions[id]
	svc.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}

	sess.lastSeen.Store(svc.now().UnixNano())

	return sess.store, nil
}

func (svc *service) Snapshot(_ context.Context, id uuid.UUID) (catalog.State, error) {
	st, err := svc.Store(id)
	if err != nil {
		return catalog.State{}, err
	}

	return st.State(), nil
}

func (svc *service) SetProductParams(_ context.Context, id uuid.UUID, patch model.ParamsPatch) (catalog.State, error) {
	st, err := svc.Store(id)
	if err != nil {
		return catalog.State{}, err
	}

	return st.SetProductParams(patch)
}

func (svc *service) SetPageNumber(_ context.Context, id uuid.UUID, patch model.ParamsPatch) (catalog.State, error) {
	st, err := svc.Store(id)
	if err != nil {
		return catalog.State{}, err
	}

	return st.SetPageNumber(patch)
}

func (svc *service) ResetProductParams(_ context.Context, id uuid.UUID) (catalog.State, error) {
	st, err := svc.Store(id)
	if err != nil {
		return catalog.State{}, err
	}

	return st.ResetProductParams(), nil
}

// Products returns the session state with the listing loaded, fetching it
// only when it is not loaded yet.
func (svc *service) Products(ctx context.Context, id uuid.UUID) (catalog.State, error) {
	st, err := svc.Store(id)
	if err != nil {
		return catalog.State{}, err
	}

	if s := st.State(); s.ProductsLoaded {
		return s, nil
	}

	return st.FetchProducts(ctx)
}

// Product serves a cached product or fetches it.
func (svc *service) Product(ctx context.Context, id uuid.UUID, productID int64) (model.Product, error) {
	st, err := svc.Store(id)
	if err != nil {
		return model.Product{}, err
	}

	if p, ok := st.State().Product(productID); ok {
		return p, nil
	}

	return st.FetchProduct(ctx, productID)
}

func (svc *service) Filters(ctx context.Context, id uuid.UUID) (model.Filters, error) {
	st, err := svc.Store(id)
	if err != nil {
		return model.Filters{}, err
	}

	if s := st.State(); s.FiltersLoaded {
		return model.Filters{
			Brands: append([]string{}, s.Brands...),
			Types:  append([]string{}, s.Types...),
		}, nil
	}

	return st.FetchFilters(ctx)
}

// InvalidateProducts marks the listing of every session outdated.
func (svc *service) InvalidateProducts(ctx context.Context) error {
	svc.mu.RLock()
	stores := make([]*Store, 0, len(svc.sessions))
	for _, sess := range svc.sessions {
		stores = append(stores, sess.store)
	}
	svc.mu.RUnlock()

	for _, st := range stores {
		st.InvalidateProducts()
	}

	logger.Debug(ctx, "product listings invalidated", logger.Int("sessions", len(stores)))

	return nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many.
func (svc *service) Sweep(now time.Time) int {
	cutoff := now.Add(-svc.ttl).UnixNano()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	n := 0
	for id, sess := range svc.sessions {
		if sess.lastSeen.Load() < cutoff {
			delete(svc.sessions, id)
			n++
		}
	}

	return n
}

// RunJanitor sweeps idle sessions until ctx is done.
func (svc *service) RunJanitor(ctx context.Context) error {
	if svc.ttl <= 0 || svc.sweepInterval <= 0 {
		logger.Info(ctx, "session janitor disabled")
		return nil
	}

	ticker := time.NewTicker(svc.sweepInterval)
	defer ticker.Stop()

	logger.Info(ctx, "session janitor started",
		logger.Duration("ttl", svc.ttl),
		logger.Duration("interval", svc.sweepInterval),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := svc.Sweep(svc.now()); n > 0 {
				logger.Info(ctx, "idle sessions evicted", logger.Int("count", n))
			}
		}
	}
}
