package catalog

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/you-humble/storefront/internal/model"
)

func fakeProduct(id int64) model.Product {
	return model.Product{
		ID:              id,
		Name:            gofakeit.ProductName(),
		Description:     gofakeit.Sentence(8),
		Price:           int64(gofakeit.Number(100, 50000)),
		PictureURL:      gofakeit.URL(),
		Type:            gofakeit.ProductCategory(),
		Brand:           gofakeit.Company(),
		QuantityInStock: int64(gofakeit.Number(0, 100)),
	}
}
