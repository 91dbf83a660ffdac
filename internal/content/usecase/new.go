package usecase

import (
	"ugc-srv/internal/content"
	"ugc-srv/internal/content/repository"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/openai"
	"ugc-srv/pkg/platform"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	platform platform.IPlatform
	openai   openai.IOpenAI
	l        log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	platformClient platform.IPlatform,
	openaiClient openai.IOpenAI,
	l log.Logger,
) content.UseCase {
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		platform: platformClient,
		openai:   openaiClient,
		l:        l,
	}
}
