package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inboxHTTP "ugc-srv/internal/inbox/delivery/http"
	inboxPostgre "ugc-srv/internal/inbox/repository/postgre"
	inboxUsecase "ugc-srv/internal/inbox/usecase"
	"ugc-srv/internal/middleware"
)

func (srv *HTTPServer) setupInboxDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := inboxPostgre.New(srv.postgresDB, srv.l)

	uc := inboxUsecase.New(repo, srv.l)

	handler := inboxHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Inbox domain registered")
	return nil
}
