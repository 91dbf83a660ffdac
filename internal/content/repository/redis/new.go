package redis

import (
	"ugc-srv/internal/content/repository"
	"ugc-srv/pkg/log"
	pkgredis "ugc-srv/pkg/redis"
)

type implRepository struct {
	redis pkgredis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgredis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
