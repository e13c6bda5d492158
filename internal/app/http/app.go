package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmiddleware "oatmeal/internal/middleware"
	"oatmeal/internal/render"
	httprouters "oatmeal/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, host, port string, renderer *render.Renderer, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api")
	{
		api.GET("/preview", s.routers.Preview)
		api.POST("/preview", s.routers.DisablePreview)
		api.GET("/exit-preview", s.routers.ExitPreview)
	}

	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/robots.txt", s.routers.Robots)
	s.e.GET("/sitemap.xml", s.routers.Sitemap)
	s.e.StaticFS("/static", render.Static())

	s.e.GET("/", s.routers.Home)
	s.e.GET("/blog", s.routers.Blog)
	s.e.GET("/blog/preview/:id", s.routers.PreviewPost)
	s.e.GET("/blog/:slug", s.routers.BlogPost)
	s.e.GET("/pricing", s.routers.Pricing)
	s.e.GET("/about", s.routers.About)
	s.e.GET("/contact", s.routers.Contact)

	// generic CMS pages, last so the named routes win
	s.e.GET("/:slug", s.routers.Page)
}
