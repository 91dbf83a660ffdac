package consumer

import (
	"ugc-srv/internal/asset"
	kafkaDelivery "ugc-srv/internal/asset/delivery/kafka"
)

func toProcessInput(m kafkaDelivery.AssetJobMessage) asset.ProcessInput {
	return asset.ProcessInput{
		JobID:     m.JobID,
		ContentID: m.ContentID,
		Kind:      m.Kind,
	}
}
