package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type backendEnv struct {
	BaseURL string        `env:"CATALOG_API_BASE_URL,required,notEmpty"`
	Timeout time.Duration `env:"CATALOG_API_TIMEOUT" envDefault:"10s"`
}

type backend struct {
	raw backendEnv
}

func NewBackendConfig() (*backend, error) {
	var raw backendEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &backend{raw: raw}, nil
}

func (cfg *backend) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *backend) Timeout() time.Duration { return cfg.raw.Timeout }
