package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ugc-srv/config"
	configKafka "ugc-srv/config/kafka"
	configMinio "ugc-srv/config/minio"
	configPostgre "ugc-srv/config/postgre"
	configRabbitMQ "ugc-srv/config/rabbitmq"
	configRedis "ugc-srv/config/redis"
	"ugc-srv/internal/httpserver"
	"ugc-srv/pkg/discord"
	"ugc-srv/pkg/encrypter"
	pkgJWT "ugc-srv/pkg/jwt"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/platform"
	"ugc-srv/pkg/shopify"
)

// @title       UGC Operations API
// @description Content discovery, review lifecycle, usage rights and derived asset jobs.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Context cancelled on SIGINT/SIGTERM drives graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// 7. Initialize RabbitMQ
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// 8. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// 9. Initialize external service clients
	openaiClient, err := openai.NewOpenAI(openai.OpenAIConfig{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		SpeechModel: cfg.OpenAI.SpeechModel,
		ImageModel:  cfg.OpenAI.ImageModel,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}
	logger.Info(ctx, "OpenAI client initialized")

	platformClient, err := platform.NewPlatform(platform.PlatformConfig{
		BaseURL: cfg.Platform.BaseURL,
		APIKey:  cfg.Platform.APIKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize platform client: ", err)
		return
	}
	logger.Info(ctx, "Platform client initialized")

	shopifyClient, err := shopify.NewShopify(shopify.ShopifyConfig{
		ClientID:     cfg.Shopify.ClientID,
		ClientSecret: cfg.Shopify.ClientSecret,
		APIVersion:   cfg.Shopify.APIVersion,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Shopify client: ", err)
		return
	}
	logger.Info(ctx, "Shopify client initialized")

	// 10. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 11. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 12. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		MinIOClient:   minioClient,

		OpenAIClient:   openaiClient,
		PlatformClient: platformClient,
		ShopifyClient:  shopifyClient,

		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
