package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type assetJobsHandler struct {
	consumer *Consumer
}

func (h *assetJobsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *assetJobsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *assetJobsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleAssetJobMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "asset.delivery.kafka.consumer.ConsumeAssetJobs: Failed to process job message: %v", err)
		}
		// Single-attempt semantics: the job row carries the outcome, the
		// message is never redelivered.
		session.MarkMessage(msg, "")
	}
	return nil
}
