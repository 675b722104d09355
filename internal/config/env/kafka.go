package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                       bool     `env:"KAFKA_ENABLED" envDefault:"true"`
	Brokers                       []string `env:"KAFKA_BROKERS"`
	ProductUpdatedTopicName       string   `env:"PRODUCT_UPDATED_TOPIC_NAME" envDefault:"product.updated"`
	ProductUpdatedConsumerGroupID string   `env:"PRODUCT_UPDATED_CONSUMER_GROUP_ID" envDefault:"storefront"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled reports whether product change events should be consumed.
func (cfg *kafka) Enabled() bool { return cfg.raw.Enabled && len(cfg.raw.Brokers) > 0 }

func (cfg *kafka) Brokers() []string             { return cfg.raw.Brokers }
func (cfg *kafka) ProductUpdatedTopic() string   { return cfg.raw.ProductUpdatedTopicName }
func (cfg *kafka) ProductUpdatedGroupID() string { return cfg.raw.ProductUpdatedConsumerGroupID }

func (cfg *kafka) ProductUpdatedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	return config
}
