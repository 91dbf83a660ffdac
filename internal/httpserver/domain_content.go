package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contentHTTP "ugc-srv/internal/content/delivery/http"
	contentPostgre "ugc-srv/internal/content/repository/postgre"
	contentRedis "ugc-srv/internal/content/repository/redis"
	contentUsecase "ugc-srv/internal/content/usecase"
	"ugc-srv/internal/middleware"
)

func (srv *HTTPServer) setupContentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := contentPostgre.New(srv.postgresDB, srv.l)
	cache := contentRedis.New(srv.redisClient, srv.l)

	uc := contentUsecase.New(repo, cache, srv.platformClient, srv.openaiClient, srv.l)

	handler := contentHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.contentPostgres = repo
	srv.contentCache = cache

	srv.l.Infof(ctx, "Content domain registered")
	return nil
}
