package worker

import (
	"context"
	"database/sql"

	"ugc-srv/config"
	"ugc-srv/pkg/encrypter"
	pkgKafka "ugc-srv/pkg/kafka"
	"ugc-srv/pkg/log"
	pkgMinio "ugc-srv/pkg/minio"
	"ugc-srv/pkg/openai"
	pkgRabbitMQ "ugc-srv/pkg/rabbitmq"
	"ugc-srv/pkg/shopify"
)

// WorkerServer orchestrates the background consumers: asset jobs from
// Kafka and rights notifications from RabbitMQ.
type WorkerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	postgresDB    *sql.DB
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ
	minioClient   pkgMinio.MinIO

	// External service clients
	openaiClient  openai.IOpenAI
	shopifyClient shopify.IShopify
	encrypter     encrypter.Encrypter
}

// Config holds all dependencies for the worker server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB    *sql.DB
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ
	MinIOClient   pkgMinio.MinIO

	// External service clients
	OpenAIClient  openai.IOpenAI
	ShopifyClient shopify.IShopify
	Encrypter     encrypter.Encrypter
}

// Run starts the worker server and blocks until the context is cancelled.
func (srv *WorkerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Worker Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Worker Server stopped gracefully")
	return nil
}
