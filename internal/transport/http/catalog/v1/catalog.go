package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/storefront/internal/catalog"
	"github.com/you-humble/storefront/internal/converter"
	"github.com/you-humble/storefront/internal/model"
	apiv1 "github.com/you-humble/storefront/internal/transport/http/api/v1"
	"github.com/you-humble/storefront/internal/transport/http/response"
)

type CatalogService interface {
	NewSession(ctx context.Context) uuid.UUID
	Snapshot(ctx context.Context, id uuid.UUID) (catalog.State, error)
	SetProductParams(ctx context.Context, id uuid.UUID, patch model.ParamsPatch) (catalog.State, error)
	SetPageNumber(ctx context.Context, id uuid.UUID, patch model.ParamsPatch) (catalog.State, error)
	ResetProductParams(ctx context.Context, id uuid.UUID) (catalog.State, error)
	Products(ctx context.Context, id uuid.UUID) (catalog.State, error)
	Product(ctx context.Context, id uuid.UUID, productID int64) (model.Product, error)
	Filters(ctx context.Context, id uuid.UUID) (model.Filters, error)
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{sid}/catalog", func(r chi.Router) {
		r.Get("/", h.GetState)
		r.Patch("/params", h.SetProductParams)
		r.Delete("/params", h.ResetProductParams)
		r.Patch("/page", h.SetPageNumber)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/filters", h.GetFilters)
	})
}

func (h *handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.svc.NewSession(r.Context())

	response.JSON(w, r, http.StatusCreated, apiv1.SessionResponse{SessionID: id.String()})
}

func (h *handler) GetState(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Snapshot(r.Context(), sid)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.CatalogStateToAPI(s))
}

func (h *handler) SetProductParams(w http.ResponseWriter, r *http.Request) {
	h.patchParams(w, r, h.svc.SetProductParams)
}

func (h *handler) SetPageNumber(w http.ResponseWriter, r *http.Request) {
	h.patchParams(w, r, h.svc.SetPageNumber)
}

func (h *handler) ResetProductParams(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.ResetProductParams(r.Context(), sid)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.CatalogStateToAPI(s))
}

func (h *handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Products(r.Context(), sid)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.ProductsResponseFromState(s))
}

func (h *handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, r, fmt.Errorf("%w: invalid product id", model.ErrValidation))
		return
	}

	p, err := h.svc.Product(r.Context(), sid, productID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.ProductToAPI(p))
}

func (h *handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.Filters(r.Context(), sid)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.FiltersToAPI(f))
}

type patchFunc func(ctx context.Context, id uuid.UUID, patch model.ParamsPatch) (catalog.State, error)

func (h *handler) patchParams(w http.ResponseWriter, r *http.Request, apply patchFunc) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req apiv1.ParamsPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, fmt.Errorf("%w: %v", model.ErrValidation, err))
		return
	}

	s, err := apply(r.Context(), sid, converter.ParamsPatchFromAPI(req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.CatalogStateToAPI(s))
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		response.Error(w, r, fmt.Errorf("%w: invalid session id", model.ErrValidation))
		return uuid.Nil, false
	}

	return sid, true
}
