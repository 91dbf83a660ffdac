package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ugc-srv/config"
	contentRepo "ugc-srv/internal/content/repository"
	"ugc-srv/internal/shop"
	"ugc-srv/pkg/discord"
	"ugc-srv/pkg/encrypter"
	pkgJWT "ugc-srv/pkg/jwt"
	"ugc-srv/pkg/log"
	pkgKafka "ugc-srv/pkg/kafka"
	pkgMinio "ugc-srv/pkg/minio"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/platform"
	pkgRabbitMQ "ugc-srv/pkg/rabbitmq"
	pkgRedis "ugc-srv/pkg/redis"
	"ugc-srv/pkg/shopify"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ
	minioClient   pkgMinio.MinIO

	// External service clients
	openaiClient   openai.IOpenAI
	platformClient platform.IPlatform
	shopifyClient  shopify.IShopify

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Cross-domain dependencies, populated during domain setup
	contentPostgres contentRepo.PostgresRepository
	contentCache    contentRepo.CacheRepository
	shopUC          shop.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ
	MinIOClient   pkgMinio.MinIO

	// External service clients
	OpenAIClient   openai.IOpenAI
	PlatformClient platform.IPlatform
	ShopifyClient  shopify.IShopify

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,
		minioClient:   cfg.MinIOClient,

		openaiClient:   cfg.OpenAIClient,
		platformClient: cfg.PlatformClient,
		shopifyClient:  cfg.ShopifyClient,

		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	if srv.openaiClient == nil {
		return errors.New("openaiClient is required")
	}
	if srv.platformClient == nil {
		return errors.New("platformClient is required")
	}
	if srv.shopifyClient == nil {
		return errors.New("shopifyClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Discord is optional

	return nil
}
