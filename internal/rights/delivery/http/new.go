package http

import (
	"ugc-srv/internal/middleware"
	"ugc-srv/internal/rights"
	"ugc-srv/pkg/discord"
	"ugc-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the rights HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      rights.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc rights.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
