package service

import (
	"context"

	"decora/internal/cache"
	"decora/internal/model"
	"decora/internal/repository"
)

const settingsCacheKey = "settings:site"

// SettingsService reads and updates the singleton site settings. Every public
// page needs these, so reads are cached and writes invalidate.
type SettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, settings *model.SiteSettings) (*model.SiteSettings, error)
}

type settingsService struct {
	repo  repository.SettingsRepository
	cache *cache.Client
}

// NewSettingsService builds a SettingsService with repository and cache.
func NewSettingsService(repo repository.SettingsRepository, cache *cache.Client) SettingsService {
	return &settingsService{repo: repo, cache: cache}
}

func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	var cached model.SiteSettings
	if s.cache.GetJSON(ctx, settingsCacheKey, &cached) {
		return &cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, settingsCacheKey, settings, contentCacheTTL)
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *model.SiteSettings) (*model.SiteSettings, error) {
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, settingsCacheKey)
	return settings, nil
}
