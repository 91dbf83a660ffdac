package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ugc-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// Setup order matters: content feeds inbox, rights and asset; shop
	// feeds asset hotspot matching.
	if err := srv.setupContentDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupInboxDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupRightsDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupShopDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupAssetDomain(ctx, r, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
