package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ugc-srv/internal/middleware"
	shopHTTP "ugc-srv/internal/shop/delivery/http"
	shopPostgre "ugc-srv/internal/shop/repository/postgre"
	shopUsecase "ugc-srv/internal/shop/usecase"
)

func (srv *HTTPServer) setupShopDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := shopPostgre.New(srv.postgresDB, srv.l)

	uc := shopUsecase.New(repo, srv.shopifyClient, srv.encrypter, srv.l)

	handler := shopHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.shopUC = uc

	srv.l.Infof(ctx, "Shop domain registered")
	return nil
}
