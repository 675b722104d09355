package model

type Product struct {
	// Stable backend identifier.
	ID          int64
	Name        string
	Description string
	// Unit price in cents.
	Price           int64
	PictureURL      string
	Type            string
	Brand           string
	QuantityInStock int64
}

// Filters is the set of facet values the catalog can be filtered by.
type Filters struct {
	Brands []string
	Types  []string
}

// MetaData describes the page a listing response belongs to.
type MetaData struct {
	CurrentPage int
	TotalPages  int
	PageSize    int
	TotalCount  int
}

type ProductList struct {
	Items    []Product
	MetaData MetaData
}
