package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "ugc-srv/internal/asset/delivery/kafka"
	"ugc-srv/internal/model"
	"ugc-srv/pkg/scope"
)

// handleAssetJobMessage receives a message, normalizes scope + input and
// delegates to the usecase.
func (c *Consumer) handleAssetJobMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "asset.delivery.kafka.consumer.handleAssetJobMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.AssetJobMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "asset.delivery.kafka.consumer.handleAssetJobMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.JobID == "" || message.ContentID == "" {
		c.l.Warnf(ctx, "asset.delivery.kafka.consumer.handleAssetJobMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	if err := c.uc.Process(ctx, toProcessInput(message)); err != nil {
		c.l.Errorf(ctx, "asset.delivery.kafka.consumer.handleAssetJobMessage: usecase Process failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "asset.delivery.kafka.consumer.handleAssetJobMessage: Processed job %s (%s)", message.JobID, message.Kind)
	return nil
}
