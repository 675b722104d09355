package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/storefront/internal/model"
)

type catalogEnv struct {
	DefaultPageSize int    `env:"CATALOG_DEFAULT_PAGE_SIZE" envDefault:"6"`
	DefaultOrderBy  string `env:"CATALOG_DEFAULT_ORDER_BY" envDefault:"name"`

	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.DefaultPageSize < 1 {
		return nil, fmt.Errorf("CATALOG_DEFAULT_PAGE_SIZE must be > 0, got %d", raw.DefaultPageSize)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) DefaultProductParams() model.ProductParams {
	p := model.DefaultProductParams()
	p.PageSize = cfg.raw.DefaultPageSize
	p.OrderBy = cfg.raw.DefaultOrderBy

	return p
}

func (cfg *catalog) SessionTTL() time.Duration           { return cfg.raw.SessionTTL }
func (cfg *catalog) SessionSweepInterval() time.Duration { return cfg.raw.SessionSweepInterval }
