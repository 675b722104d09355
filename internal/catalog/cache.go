package catalog

import (
	"github.com/you-humble/storefront/internal/model"
)

// ProductCache is a normalized product collection keyed by product id.
// Iteration follows insertion order.
type ProductCache struct {
	ids      []int64
	entities map[int64]model.Product
}

func NewProductCache(items ...model.Product) ProductCache {
	return ProductCache{}.ReplaceAll(items)
}

// ReplaceAll returns a cache holding exactly items. On duplicate ids the
// later item wins and keeps the position of the first.
func (c ProductCache) ReplaceAll(items []model.Product) ProductCache {
	out := ProductCache{
		ids:      make([]int64, 0, len(items)),
		entities: make(map[int64]model.Product, len(items)),
	}

	for _, p := range items {
		if _, ok := out.entities[p.ID]; !ok {
			out.ids = append(out.ids, p.ID)
		}
		out.entities[p.ID] = p
	}

	return out
}

// UpsertOne returns a copy of c with item inserted or overwritten.
func (c ProductCache) UpsertOne(item model.Product) ProductCache {
	out := ProductCache{
		ids:      make([]int64, len(c.ids), len(c.ids)+1),
		entities: make(map[int64]model.Product, len(c.entities)+1),
	}
	copy(out.ids, c.ids)
	for id, p := range c.entities {
		out.entities[id] = p
	}

	if _, ok := out.entities[item.ID]; !ok {
		out.ids = append(out.ids, item.ID)
	}
	out.entities[item.ID] = item

	return out
}

func (c ProductCache) ByID(id int64) (model.Product, bool) {
	p, ok := c.entities[id]
	return p, ok
}

func (c ProductCache) Len() int { return len(c.ids) }

func (c ProductCache) IDs() []int64 {
	return append([]int64{}, c.ids...)
}

func (c ProductCache) All() []model.Product {
	out := make([]model.Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entities[id])
	}

	return out
}
