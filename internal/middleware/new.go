package middleware

import (
	"ugc-srv/config"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}
