package consumer

import (
	"context"

	kafkaDelivery "ugc-srv/internal/asset/delivery/kafka"
)

// ConsumeAssetJobs starts consuming submitted asset jobs
func (c *Consumer) ConsumeAssetJobs(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupAssetJobs)
	if err != nil {
		return err
	}
	c.assetJobsGroup = group

	handler := &assetJobsHandler{
		consumer: c,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicAssetJobs}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicAssetJobs)

	return nil
}
