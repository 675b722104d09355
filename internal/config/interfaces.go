package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/you-humble/storefront/internal/model"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Backend interface {
	BaseURL() string
	Timeout() time.Duration
}

type Catalog interface {
	DefaultProductParams() model.ProductParams
	SessionTTL() time.Duration
	SessionSweepInterval() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	ProductUpdatedTopic() string
	ProductUpdatedGroupID() string
	ProductUpdatedConsumerConfig() *sarama.Config
}
