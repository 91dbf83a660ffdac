package consumer

import (
	"fmt"

	"ugc-srv/config"
	"ugc-srv/internal/asset"
	pkgKafka "ugc-srv/pkg/kafka"
	"ugc-srv/pkg/log"
)

// Config holds the configuration for the asset job consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     asset.UseCase
}

// Consumer manages the Kafka consumer group for the asset domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          asset.UseCase

	assetJobsGroup pkgKafka.IConsumer
}

// New creates a new asset consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.assetJobsGroup != nil {
		if err := c.assetJobsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close asset jobs group: %w", err)
		}
	}

	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
