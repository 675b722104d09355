// Package dto holds the JSON shapes of the catalog backend API.
package dto

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

type Filters struct {
	Brands []string `json:"brands"`
	Types  []string `json:"types"`
}

// Pagination is carried in the Pagination response header of a listing.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
}
