package services

import (
	"context"
	"log/slog"
	"time"

	"oatmeal/internal/domain/models"
	"oatmeal/internal/lib/logger/sl"

	gocache "github.com/patrickmn/go-cache"
)

const (
	optionsKey  = "site_options"
	settingsKey = "general_settings"
)

// OptionsFetcher is the slice of the content service the cache reads through.
type OptionsFetcher interface {
	GetSiteOptions(ctx context.Context) (*models.SiteOptions, error)
	GetGeneralSettings(ctx context.Context) (*models.GeneralSettings, error)
}

// SiteService is the process-wide read-through cache for global site
// state (navigation, footer, SEO defaults). Entries revalidate on a
// fixed interval rather than per request; a failed refresh keeps
// serving the last good value, and a cold cache that cannot be filled
// returns nil so the renderer substitutes built-in defaults.
type SiteService struct {
	log     *slog.Logger
	content OptionsFetcher
	cache   *gocache.Cache
}

func NewSiteService(log *slog.Logger, content OptionsFetcher, ttl time.Duration) *SiteService {
	return &SiteService{
		log:     log,
		content: content,
		// NoExpiration entries hold the last good value; the ttl entry
		// is just the revalidation marker.
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Options returns the cached SiteOptions, refreshing when stale.
func (s *SiteService) Options(ctx context.Context) *models.SiteOptions {
	const op = "site_service.Options"

	if v, ok := s.cache.Get(optionsKey); ok {
		return v.(*models.SiteOptions)
	}

	opts, err := s.content.GetSiteOptions(ctx)
	if err != nil {
		s.log.Warn("site options refresh failed", slog.String("op", op), sl.Err(err))
		// serve the stale copy if one survived past its expiry
		if v, ok := s.cache.Get(optionsKey + ":stale"); ok {
			return v.(*models.SiteOptions)
		}
		return nil
	}
	if opts == nil {
		return nil
	}

	s.cache.SetDefault(optionsKey, opts)
	s.cache.Set(optionsKey+":stale", opts, gocache.NoExpiration)

	return opts
}

// Settings returns the cached GeneralSettings, refreshing when stale.
func (s *SiteService) Settings(ctx context.Context) *models.GeneralSettings {
	const op = "site_service.Settings"

	if v, ok := s.cache.Get(settingsKey); ok {
		return v.(*models.GeneralSettings)
	}

	settings, err := s.content.GetGeneralSettings(ctx)
	if err != nil {
		s.log.Warn("general settings refresh failed", slog.String("op", op), sl.Err(err))
		if v, ok := s.cache.Get(settingsKey + ":stale"); ok {
			return v.(*models.GeneralSettings)
		}
		return nil
	}
	if settings == nil {
		return nil
	}

	s.cache.SetDefault(settingsKey, settings)
	s.cache.Set(settingsKey+":stale", settings, gocache.NoExpiration)

	return settings
}
