// Package daemon wires the config, the logger and the web service together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/superior-limousine/website/internal/config"
	"github.com/superior-limousine/website/internal/logger"
	"github.com/superior-limousine/website/internal/web"
)

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Addr returns the listen address of the web service.
func (d *Daemon) Addr() string {
	return fmt.Sprintf(":%d", d.cfg.Webserver.Port)
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	errC := make(chan error, 1)

	go func() {
		errC <- d.webService.Start(d.Addr())
	}()

	go d.webService.WaitShutdown()

	return <-errC
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	webService, err := web.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init web service")
	}

	log.Info().
		Str("title", cfg.Title).
		Int("nav_links", webService.Nav().Len()).
		Bool("dev", cfg.DevMode).
		Msg("daemon created")

	return &Daemon{
		cfg:        cfg,
		webService: webService,
	}, nil
}
