package ordclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/you-humble/storefront/internal/client/converter"
	"github.com/you-humble/storefront/internal/client/dto"
	"github.com/you-humble/storefront/internal/model"
)

type restAgent interface {
	Get(ctx context.Context, op, path string, query url.Values, out any) (http.Header, error)
}

type client struct {
	rest restAgent
}

func NewClient(rest restAgent) *client {
	return &client{rest: rest}
}

func (c *client) Orders(ctx context.Context) ([]model.Order, error) {
	const op = "order.client.Orders"

	var orders []dto.Order
	if _, err := c.rest.Get(ctx, op, "orders", nil, &orders); err != nil {
		return nil, err
	}

	return converter.OrdersToModel(orders), nil
}

func (c *client) Order(ctx context.Context, id int64) (model.Order, error) {
	const op = "order.client.Order"

	var o dto.Order
	if _, err := c.rest.Get(ctx, op, "orders/"+strconv.FormatInt(id, 10), nil, &o); err != nil {
		var reqErr *model.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound && reqErr.Err == nil {
			reqErr.Err = model.ErrOrderNotFound
		}
		return model.Order{}, err
	}

	return converter.OrderToModel(o), nil
}
