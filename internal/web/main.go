// Package web serves the website with fiber.
package web

import (
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/superior-limousine/website/internal/config"
	fiberlogger "github.com/superior-limousine/website/internal/logger/adapter/fiber"
	"github.com/superior-limousine/website/internal/web/handler"
	"github.com/superior-limousine/website/internal/web/handler/page"
	"github.com/superior-limousine/website/internal/web/navigation"
)

const (
	devTemplateDir = "./internal/web/templates"
	readBufferSize = 8192
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	nav          *navigation.Model
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr and blocks until the server is stopped.
func (s *Service) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("starting http server")

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "fiber listen")
	}

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// Nav returns the navigation model shared by all pages.
func (s *Service) Nav() *navigation.Model {
	return s.nav
}

// WaitShutdown blocks until SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown stops the http server.
// Unless fast shutdown is set, check alive fails for ShutDownTime seconds first,
// so load balancers can drain this instance.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service. The navigation model is built once from the config here.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	nav, err := navigation.NewModel(cfg.Nav.Links...)
	if err != nil {
		return nil, errors.Wrap(err, "navigation model")
	}

	var (
		templates      fs.FS = templateEmbedFS{embeddedTemplates}
		templateEngine       = html.NewFileSystem(http.FS(templates), handler.TemplateExtension)
	)

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templates = os.DirFS(devTemplateDir)
		templateEngine = html.New(devTemplateDir, handler.TemplateExtension)
		templateEngine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        readBufferSize,
			AppName:               cfg.Title,
			CaseSensitive:         true,
			StrictRouting:         true,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			Views:                 templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: cfg.Webserver.CheckAliveURI,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		App: app,
		cfg: cfg,
		nav: nav,
	}

	app.Get(cfg.Webserver.CheckAliveURI, service.checkAlive)

	if cfg.Webserver.MetricsURI != "" {
		app.Get(cfg.Webserver.MetricsURI, adaptor.HTTPHandler(promhttp.Handler()))
	}

	pages := new(page.Service)

	if err = pages.Init(app, handler.Deps{Config: cfg, Nav: nav, Templates: templates}); err != nil {
		return nil, errors.Wrap(err, "page handler")
	}

	// everything not matched above
	app.Use(pages.NotFound)

	service.alive.Store(true)

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.Alive() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
