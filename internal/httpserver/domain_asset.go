package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assetHTTP "ugc-srv/internal/asset/delivery/http"
	assetProducer "ugc-srv/internal/asset/delivery/kafka/producer"
	assetPostgre "ugc-srv/internal/asset/repository/postgre"
	assetUsecase "ugc-srv/internal/asset/usecase"
	"ugc-srv/internal/middleware"
)

func (srv *HTTPServer) setupAssetDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := assetPostgre.New(srv.postgresDB, srv.l)

	producer := assetProducer.New(srv.l, srv.kafkaProducer)

	uc := assetUsecase.New(
		repo,
		srv.contentPostgres,
		producer,
		srv.openaiClient,
		srv.minioClient,
		srv.config.MinIO.Bucket,
		srv.shopUC,
		srv.l,
	)

	handler := assetHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Asset domain registered")
	return nil
}
