package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ugc-srv/config"
	configKafka "ugc-srv/config/kafka"
	configMinio "ugc-srv/config/minio"
	configPostgre "ugc-srv/config/postgre"
	configRabbitMQ "ugc-srv/config/rabbitmq"
	"ugc-srv/internal/worker"
	"ugc-srv/pkg/encrypter"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/shopify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting UGC Worker Service...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Kafka producer (re-publishing is not done here, the asset usecase needs it)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// RabbitMQ
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// OpenAI
	openaiClient, err := openai.NewOpenAI(openai.OpenAIConfig{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		SpeechModel: cfg.OpenAI.SpeechModel,
		ImageModel:  cfg.OpenAI.ImageModel,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize OpenAI client: %v", err)
		return
	}
	logger.Info(ctx, "OpenAI client initialized")

	// Shopify
	shopifyClient, err := shopify.NewShopify(shopify.ShopifyConfig{
		ClientID:     cfg.Shopify.ClientID,
		ClientSecret: cfg.Shopify.ClientSecret,
		APIVersion:   cfg.Shopify.APIVersion,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Shopify client: %v", err)
		return
	}
	logger.Info(ctx, "Shopify client initialized")

	// Encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// Worker server
	srv, err := worker.New(worker.Config{
		Logger:        logger,
		Config:        cfg,
		PostgresDB:    postgresDB,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		MinIOClient:   minioClient,
		OpenAIClient:  openaiClient,
		ShopifyClient: shopifyClient,
		Encrypter:     encrypterInstance,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create worker server: %v", err)
		return
	}

	// Run worker server
	logger.Info(ctx, "Worker server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Worker server error: %v", err)
		return
	}

	logger.Info(ctx, "Worker server stopped gracefully")
}
