// Package apiv1 holds the JSON shapes of the storefront HTTP API.
package apiv1

type Product struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	PictureURL      string `json:"pictureUrl"`
	Type            string `json:"type"`
	Brand           string `json:"brand"`
	QuantityInStock int64  `json:"quantityInStock"`
}

type ProductParams struct {
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	OrderBy    string   `json:"orderBy"`
	SearchTerm string   `json:"searchTerm,omitempty"`
	Brands     []string `json:"brands"`
	Types      []string `json:"types"`
}

type MetaData struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
}

// ParamsPatchRequest is a partial ProductParams. Absent fields are kept.
// Brands and Types replace the whole selection when present.
type ParamsPatchRequest struct {
	PageNumber *int      `json:"pageNumber,omitempty"`
	PageSize   *int      `json:"pageSize,omitempty"`
	OrderBy    *string   `json:"orderBy,omitempty"`
	SearchTerm *string   `json:"searchTerm,omitempty"`
	Brands     *[]string `json:"brands,omitempty"`
	Types      *[]string `json:"types,omitempty"`
}

type LoadErrors struct {
	Products string `json:"products,omitempty"`
	Product  string `json:"product,omitempty"`
	Filters  string `json:"filters,omitempty"`
}

type CatalogState struct {
	Products       []Product     `json:"products"`
	ProductsLoaded bool          `json:"productsLoaded"`
	FiltersLoaded  bool          `json:"filtersLoaded"`
	Status         string        `json:"status"`
	Brands         []string      `json:"brands"`
	Types          []string      `json:"types"`
	ProductParams  ProductParams `json:"productParams"`
	MetaData       *MetaData     `json:"metaData"`
	Errors         *LoadErrors   `json:"errors,omitempty"`
}

type ProductsResponse struct {
	Items         []Product     `json:"items"`
	MetaData      *MetaData     `json:"metaData"`
	ProductParams ProductParams `json:"productParams"`
}

type Filters struct {
	Brands []string `json:"brands"`
	Types  []string `json:"types"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}
