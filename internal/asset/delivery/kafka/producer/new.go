package producer

import (
	"ugc-srv/internal/asset"
	pkgKafka "ugc-srv/pkg/kafka"
	"ugc-srv/pkg/log"
)

// Producer interface for the asset domain
type Producer interface {
	asset.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new asset job producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
