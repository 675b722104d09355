package kafka

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/you-humble/storefront/platform/logger"
	"github.com/you-humble/storefront/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	ClusterID string
	Logger    Logger

	Brokers []string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: envOr(testcontainers.KafkaImageNameKey, testcontainers.KafkaImageName),
		ClusterID: envOr(testcontainers.KafkaClusterIDKey, "storefront-test"),
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
