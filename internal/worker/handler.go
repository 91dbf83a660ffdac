package worker

import (
	"context"
	"fmt"

	assetConsumer "ugc-srv/internal/asset/delivery/kafka/consumer"
	assetProducer "ugc-srv/internal/asset/delivery/kafka/producer"
	assetPostgre "ugc-srv/internal/asset/repository/postgre"
	assetUsecase "ugc-srv/internal/asset/usecase"
	contentPostgre "ugc-srv/internal/content/repository/postgre"
	notifierRabbitMQ "ugc-srv/internal/notifier/delivery/rabbitmq"
	notifierUsecase "ugc-srv/internal/notifier/usecase"
	shopPostgre "ugc-srv/internal/shop/repository/postgre"
	shopUsecase "ugc-srv/internal/shop/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	assetConsumer    *assetConsumer.Consumer
	notifierConsumer *notifierRabbitMQ.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *WorkerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Shop domain feeds hotspot product matching
	shopRepo := shopPostgre.New(srv.postgresDB, srv.l)
	shopUC := shopUsecase.New(shopRepo, srv.shopifyClient, srv.encrypter, srv.l)

	// Asset domain
	assetRepo := assetPostgre.New(srv.postgresDB, srv.l)
	contentRepo := contentPostgre.New(srv.postgresDB, srv.l)
	producer := assetProducer.New(srv.l, srv.kafkaProducer)
	assetUC := assetUsecase.New(
		assetRepo,
		contentRepo,
		producer,
		srv.openaiClient,
		srv.minioClient,
		srv.config.MinIO.Bucket,
		shopUC,
		srv.l,
	)
	assetCons, err := assetConsumer.New(assetConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     assetUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create asset consumer: %w", err)
	}

	srv.l.Infof(ctx, "Asset domain initialized")

	// Notifier domain
	notifierUC := notifierUsecase.New(srv.config.Brand, srv.l)
	notifierCons, err := notifierRabbitMQ.New(srv.rabbitConn, srv.config.RabbitMQ.Queue, notifierUC, srv.l)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier consumer: %w", err)
	}

	srv.l.Infof(ctx, "Notifier domain initialized")

	return &domainConsumers{
		assetConsumer:    assetCons,
		notifierConsumer: notifierCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *WorkerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.assetConsumer.ConsumeAssetJobs(ctx); err != nil {
		return fmt.Errorf("failed to start asset consumer: %w", err)
	}

	if err := consumers.notifierConsumer.Consume(ctx); err != nil {
		return fmt.Errorf("failed to start notifier consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *WorkerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.assetConsumer != nil {
		if err := consumers.assetConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing asset consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
