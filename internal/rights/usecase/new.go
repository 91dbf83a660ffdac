package usecase

import (
	contentRepo "ugc-srv/internal/content/repository"
	"ugc-srv/internal/rights"
	"ugc-srv/internal/rights/repository"
	"ugc-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	cache     contentRepo.CacheRepository
	publisher rights.Publisher
	l         log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	cache contentRepo.CacheRepository,
	publisher rights.Publisher,
	l log.Logger,
) rights.UseCase {
	return &implUseCase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		l:         l,
	}
}
