package usecase

import (
	"ugc-srv/internal/shop"
	"ugc-srv/internal/shop/repository"
	"ugc-srv/pkg/encrypter"
	"ugc-srv/pkg/log"
	"ugc-srv/pkg/shopify"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	shopify   shopify.IShopify
	encrypter encrypter.Encrypter
	l         log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, sf shopify.IShopify, enc encrypter.Encrypter, l log.Logger) shop.UseCase {
	return &implUseCase{
		repo:      repo,
		shopify:   sf,
		encrypter: enc,
		l:         l,
	}
}
