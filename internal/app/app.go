package app

import (
	"log/slog"

	httpapp "oatmeal/internal/app/http"
	"oatmeal/internal/config"
	"oatmeal/internal/render"
	contentsvc "oatmeal/internal/services/content_service"
	previewsvc "oatmeal/internal/services/preview_service"
	sitesvc "oatmeal/internal/services/site_service"
	httprouters "oatmeal/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
}

func New(log *slog.Logger, cfg *config.Config) *App {
	contentService := contentsvc.NewContentService(log, cfg.WordPress)
	siteService := sitesvc.NewSiteService(log, contentService, cfg.Preview.OptionsTTL)
	previewService := previewsvc.NewPreviewService(log, cfg)

	routers := httprouters.NewRouter(log, cfg, contentService, siteService, previewService)

	renderer, err := render.NewRenderer()
	if err != nil {
		panic(err)
	}

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, renderer, routers)
	server.BuildRouters()

	return &App{HTTPServer: server}
}
