package usecase

import (
	"ugc-srv/config"
	"ugc-srv/internal/notifier"
	"ugc-srv/pkg/log"
)

type implUseCase struct {
	brand config.BrandConfig
	l     log.Logger
}

// New - Factory function
func New(brand config.BrandConfig, l log.Logger) notifier.UseCase {
	return &implUseCase{
		brand: brand,
		l:     l,
	}
}
