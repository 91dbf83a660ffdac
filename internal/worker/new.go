package worker

import (
	"fmt"
)

// New creates a new worker server with dependency validation
func New(cfg Config) (*WorkerServer, error) {
	srv := &WorkerServer{
		l:             cfg.Logger,
		config:        cfg.Config,
		postgresDB:    cfg.PostgresDB,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,
		minioClient:   cfg.MinIOClient,
		openaiClient:  cfg.OpenAIClient,
		shopifyClient: cfg.ShopifyClient,
		encrypter:     cfg.Encrypter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *WorkerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.kafkaProducer == nil {
		return fmt.Errorf("kafka producer is required")
	}
	if srv.rabbitConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}

	if srv.openaiClient == nil {
		return fmt.Errorf("openai client is required")
	}
	if srv.shopifyClient == nil {
		return fmt.Errorf("shopify client is required")
	}
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}
