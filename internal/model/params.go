package model

const (
	DefaultPageSize = 6
	DefaultOrderBy  = "name"
)

// ProductParams is the listing query a session currently shows.
type ProductParams struct {
	PageNumber int
	PageSize   int
	OrderBy    string
	SearchTerm string
	Brands     []string
	Types      []string
}

func DefaultProductParams() ProductParams {
	return ProductParams{
		PageNumber: 1,
		PageSize:   DefaultPageSize,
		OrderBy:    DefaultOrderBy,
		Brands:     []string{},
		Types:      []string{},
	}
}

func (p ProductParams) Clone() ProductParams {
	out := p
	out.Brands = append([]string{}, p.Brands...)
	out.Types = append([]string{}, p.Types...)
	return out
}

// ParamsPatch is a partial update of ProductParams. Nil fields are left as they are.
type ParamsPatch struct {
	PageNumber *int
	PageSize   *int
	OrderBy    *string
	SearchTerm *string
	Brands     []string
	Types      []string

	// Brands and Types are slices, so "given but empty" needs its own flag.
	BrandsSet bool
	TypesSet  bool
}

func (p ParamsPatch) Empty() bool {
	return p.PageNumber == nil &&
		p.PageSize == nil &&
		p.OrderBy == nil &&
		p.SearchTerm == nil &&
		!p.BrandsSet &&
		!p.TypesSet
}
