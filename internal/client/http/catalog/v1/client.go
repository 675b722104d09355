package catclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/you-humble/storefront/internal/client/converter"
	"github.com/you-humble/storefront/internal/client/dto"
	"github.com/you-humble/storefront/internal/model"
)

const paginationHeader = "Pagination"

type restAgent interface {
	Get(ctx context.Context, op, path string, query url.Values, out any) (http.Header, error)
}

type client struct {
	rest restAgent
}

func NewClient(rest restAgent) *client {
	return &client{rest: rest}
}

func (c *client) ListProducts(ctx context.Context, params model.ProductParams) (model.ProductList, error) {
	const op = "catalog.client.ListProducts"

	var items []dto.Product
	h, err := c.rest.Get(ctx, op, "products", converter.ProductParamsToQuery(params), &items)
	if err != nil {
		return model.ProductList{}, err
	}

	md, err := metaData(h, params, len(items))
	if err != nil {
		return model.ProductList{}, &model.RequestError{Op: op, StatusCode: http.StatusOK, Err: err}
	}

	return model.ProductList{
		Items:    converter.ProductsToModel(items),
		MetaData: md,
	}, nil
}

func (c *client) Product(ctx context.Context, id int64) (model.Product, error) {
	const op = "catalog.client.Product"

	var p dto.Product
	if _, err := c.rest.Get(ctx, op, "products/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return model.Product{}, notFoundAs(err, model.ErrProductNotFound)
	}

	return converter.ProductToModel(p), nil
}

func (c *client) Filters(ctx context.Context) (model.Filters, error) {
	const op = "catalog.client.Filters"

	var f dto.Filters
	if _, err := c.rest.Get(ctx, op, "products/filters", nil, &f); err != nil {
		return model.Filters{}, err
	}

	return converter.FiltersToModel(f), nil
}

// metaData reads the paging header. A backend that omits it is treated as
// returning one page holding everything.
func metaData(h http.Header, params model.ProductParams, n int) (model.MetaData, error) {
	raw := h.Get(paginationHeader)
	if raw == "" {
		return model.MetaData{
			CurrentPage: params.PageNumber,
			TotalPages:  1,
			PageSize:    params.PageSize,
			TotalCount:  n,
		}, nil
	}

	var p dto.Pagination
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.MetaData{}, fmt.Errorf("decode %s header: %w", paginationHeader, err)
	}

	return converter.PaginationToModel(p), nil
}

func notFoundAs(err error, target error) error {
	var reqErr *model.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound && reqErr.Err == nil {
		reqErr.Err = target
	}

	return err
}
