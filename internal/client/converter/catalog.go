package converter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/client/dto"
	"github.com/you-humble/storefront/internal/model"
)

// ProductParamsToQuery builds the listing query string. Page, size and
// order are always sent; search, brands and types only when set.
func ProductParamsToQuery(p model.ProductParams) url.Values {
	q := url.Values{}
	q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	q.Set("orderBy", p.OrderBy)

	if p.SearchTerm != "" {
		q.Set("searchTerm", p.SearchTerm)
	}
	if len(p.Brands) > 0 {
		q.Set("brands", strings.Join(p.Brands, ","))
	}
	if len(p.Types) > 0 {
		q.Set("types", strings.Join(p.Types, ","))
	}

	return q
}

func ProductsToModel(items []dto.Product) []model.Product {
	return lo.Map(items, func(p dto.Product, _ int) model.Product {
		return ProductToModel(p)
	})
}

func ProductToModel(p dto.Product) model.Product {
	return model.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PictureURL:      p.PictureURL,
		Type:            p.Type,
		Brand:           p.Brand,
		QuantityInStock: p.QuantityInStock,
	}
}

func FiltersToModel(f dto.Filters) model.Filters {
	return model.Filters{
		Brands: append([]string{}, f.Brands...),
		Types:  append([]string{}, f.Types...),
	}
}

func PaginationToModel(p dto.Pagination) model.MetaData {
	return model.MetaData{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
	}
}
