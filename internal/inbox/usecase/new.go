package usecase

import (
	"ugc-srv/internal/inbox"
	"ugc-srv/internal/inbox/repository"
	"ugc-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) inbox.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
