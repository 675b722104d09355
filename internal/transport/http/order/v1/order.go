package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/storefront/internal/converter"
	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/internal/transport/http/response"
)

type OrderService interface {
	List(ctx context.Context) ([]model.OrderDetails, error)
	OrderByID(ctx context.Context, id int64) (model.OrderDetails, error)
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{id}", h.GetOrder)
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.OrdersDetailsToAPI(orders))
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, r, fmt.Errorf("%w: invalid order id", model.ErrValidation))
		return
	}

	ord, err := h.svc.OrderByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.OrderDetailsToAPI(ord))
}
