package usecase

import (
	"taskdesk/internal/user"
	"taskdesk/internal/user/repository"
	"taskdesk/pkg/gidentity"
	"taskdesk/pkg/log"
)

type implUseCase struct {
	provider gidentity.Provider
	repo     repository.Repository
	l        log.Logger
}

var _ user.UseCase = (*implUseCase)(nil)

func New(l log.Logger, provider gidentity.Provider, repo repository.Repository) *implUseCase {
	return &implUseCase{
		provider: provider,
		repo:     repo,
		l:        l,
	}
}
