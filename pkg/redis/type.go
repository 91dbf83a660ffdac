package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultConnectTimeout is the timeout for the initial connection ping.
const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
