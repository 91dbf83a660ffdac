package usecase

import (
	"ugc-srv/internal/asset"
	"ugc-srv/internal/asset/repository"
	contentRepo "ugc-srv/internal/content/repository"
	"ugc-srv/internal/shop"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/minio"
	"ugc-srv/pkg/openai"
)

type implUseCase struct {
	repo        repository.PostgresRepository
	contentRepo contentRepo.PostgresRepository
	producer    asset.Producer
	ai          openai.IOpenAI
	storage     minio.MinIO
	bucket      string
	shop        shop.UseCase
	l           log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	cRepo contentRepo.PostgresRepository,
	producer asset.Producer,
	ai openai.IOpenAI,
	storage minio.MinIO,
	bucket string,
	shopUC shop.UseCase,
	l log.Logger,
) asset.UseCase {
	return &implUseCase{
		repo:        repo,
		contentRepo: cRepo,
		producer:    producer,
		ai:          ai,
		storage:     storage,
		bucket:      bucket,
		shop:        shopUC,
		l:           l,
	}
}
