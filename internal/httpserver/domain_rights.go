package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"ugc-srv/internal/middleware"
	rightsHTTP "ugc-srv/internal/rights/delivery/http"
	rightsRabbitMQ "ugc-srv/internal/rights/delivery/rabbitmq"
	rightsPostgre "ugc-srv/internal/rights/repository/postgre"
	rightsUsecase "ugc-srv/internal/rights/usecase"
)

func (srv *HTTPServer) setupRightsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := rightsPostgre.New(srv.postgresDB, srv.l)

	publisher, err := rightsRabbitMQ.NewProducer(srv.rabbitConn, srv.config.RabbitMQ.Queue, srv.l)
	if err != nil {
		return fmt.Errorf("failed to create rights publisher: %w", err)
	}

	uc := rightsUsecase.New(repo, srv.contentCache, publisher, srv.l)

	handler := rightsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Rights domain registered")
	return nil
}
