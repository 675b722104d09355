package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/catalog"
	"github.com/you-humble/storefront/internal/model"
	apiv1 "github.com/you-humble/storefront/internal/transport/http/api/v1"
)

func ProductToAPI(p model.Product) apiv1.Product {
	return apiv1.Product{
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

func ProductsToAPI(items []model.Product) []apiv1.Product {
	return lo.Map(items, func(p model.Product, _ int) apiv1.Product {
		return ProductToAPI(p)
	})
}

func ProductParamsToAPI(p model.ProductParams) apiv1.ProductParams {
	return apiv1.ProductParams{
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		OrderBy:    p.OrderBy,
		SearchTerm: p.SearchTerm,
		Brands:     nonNil(p.Brands),
		Types:      nonNil(p.Types),
	}
}

func MetaDataToAPI(md *model.MetaData) *apiv1.MetaData {
	if md == nil {
		return nil
	}

	return &apiv1.MetaData{
		CurrentPage: md.CurrentPage,
		TotalPages:  md.TotalPages,
		PageSize:    md.PageSize,
		TotalCount:  md.TotalCount,
	}
}

func FiltersToAPI(f model.Filters) apiv1.Filters {
	return apiv1.Filters{
		Brands: nonNil(f.Brands),
		Types:  nonNil(f.Types),
	}
}

func CatalogStateToAPI(s catalog.State) apiv1.CatalogState {
	return apiv1.CatalogState{
		Products:       ProductsToAPI(s.AllProducts()),
		ProductsLoaded: s.ProductsLoaded,
		FiltersLoaded:  s.FiltersLoaded,
		Status:         string(s.Status),
		Brands:         nonNil(s.Brands),
		Types:          nonNil(s.Types),
		ProductParams:  ProductParamsToAPI(s.Params),
		MetaData:       MetaDataToAPI(s.MetaData),
		Errors:         loadErrorsToAPI(s.Errors),
	}
}

func ProductsResponseFromState(s catalog.State) apiv1.ProductsResponse {
	return apiv1.ProductsResponse{
		Items:         ProductsToAPI(s.Listing()),
		MetaData:      MetaDataToAPI(s.MetaData),
		ProductParams: ProductParamsToAPI(s.Params),
	}
}

func ParamsPatchFromAPI(req apiv1.ParamsPatchRequest) model.ParamsPatch {
	patch := model.ParamsPatch{
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
		OrderBy:    req.OrderBy,
		SearchTerm: req.SearchTerm,
	}
	if req.Brands != nil {
		patch.Brands = *req.Brands
		patch.BrandsSet = true
	}
	if req.Types != nil {
		patch.Types = *req.Types
		patch.TypesSet = true
	}

	return patch
}

func loadErrorsToAPI(e catalog.Errors) *apiv1.LoadErrors {
	if e.Products == nil && e.Product == nil && e.Filters == nil {
		return nil
	}

	msg := func(err error) string {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	return &apiv1.LoadErrors{
		Products: msg(e.Products),
		Product:  msg(e.Product),
		Filters:  msg(e.Filters),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
