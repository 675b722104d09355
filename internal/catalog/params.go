package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/model"
)

// ValidatePatch rejects patches that would leave the query unusable.
func ValidatePatch(patch model.ParamsPatch) error {
	if patch.PageNumber != nil && *patch.PageNumber < 1 {
		return fmt.Errorf("%w: page number must be >= 1, got %d", model.ErrValidation, *patch.PageNumber)
	}
	if patch.PageSize != nil && *patch.PageSize < 1 {
		return fmt.Errorf("%w: page size must be > 0, got %d", model.ErrValidation, *patch.PageSize)
	}
	if patch.OrderBy != nil && strings.TrimSpace(*patch.OrderBy) == "" {
		return fmt.Errorf("%w: order by must not be empty", model.ErrValidation)
	}

	return nil
}

// MergeParams applies the given fields of patch on top of p.
func MergeParams(p model.ProductParams, patch model.ParamsPatch) model.ProductParams {
	out := p.Clone()

	if patch.PageNumber != nil {
		out.PageNumber = *patch.PageNumber
	}
	if patch.PageSize != nil {
		out.PageSize = *patch.PageSize
	}
	if patch.OrderBy != nil {
		out.OrderBy = strings.TrimSpace(*patch.OrderBy)
	}
	if patch.SearchTerm != nil {
		out.SearchTerm = strings.TrimSpace(*patch.SearchTerm)
	}
	if patch.BrandsSet {
		out.Brands = normalizeSet(patch.Brands)
	}
	if patch.TypesSet {
		out.Types = normalizeSet(patch.Types)
	}

	return out
}

// normalizeSet trims values, drops blanks and duplicates. First occurrence
// order is kept.
func normalizeSet(values []string) []string {
	trimmed := lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	})

	return lo.Uniq(lo.Compact(trimmed))
}
