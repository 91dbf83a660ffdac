package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaDelivery "ugc-srv/internal/asset/delivery/kafka"
	"ugc-srv/internal/model"
)

// PublishAssetJob publishes a submitted job, keyed by content id so jobs
// for the same content stay ordered on one partition.
func (p *implProducer) PublishAssetJob(ctx context.Context, job model.DerivedAsset) error {
	msg := kafkaDelivery.AssetJobMessage{
		JobID:       job.ID,
		ContentID:   job.ContentID,
		Kind:        job.Kind,
		SubmittedAt: time.Now(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal asset job: %w", err)
	}

	if err := p.producer.Publish([]byte(job.ContentID), body); err != nil {
		return fmt.Errorf("failed to publish asset job: %w", err)
	}

	p.l.Infof(ctx, "Published asset job %s (%s) for content %s", job.ID, job.Kind, job.ContentID)
	return nil
}
