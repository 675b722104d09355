package kafka

import (
	"context"
	"fmt"
	"strings"

	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"
)

type Container struct {
	container *tckafka.KafkaContainer
	cfg       *Config
}

// NewContainer starts a single-node KRaft broker and resolves its
// externally reachable addresses.
func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := tckafka.Run(ctx, cfg.ImageName, tckafka.WithClusterID(cfg.ClusterID))
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
			}
		}
	}()

	cfg.Brokers, err = container.Brokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get kafka brokers: %w", err)
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka container reported no brokers")
	}

	cfg.Logger.Info(ctx, "Kafka container started", zap.String("brokers", strings.Join(cfg.Brokers, ",")))
	success = true

	return &Container{
		container: container,
		cfg:       cfg,
	}, nil
}

func (c *Container) Brokers() []string {
	return append([]string(nil), c.cfg.Brokers...)
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Kafka container terminated")

	return nil
}
