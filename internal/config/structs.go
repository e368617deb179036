package config

import (
	"time"

	"github.com/superior-limousine/website/internal/logger"
	"github.com/superior-limousine/website/internal/web/navigation"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Log       logger.Log
	Title     string
	Webserver Webserver
	Brand     Brand
	Nav       Nav
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	CheckAliveURI  string // load balancer health check path
	MetricsURI     string // prometheus exposition path, empty disables it
}

// Brand holds the logo and marquee texts of the header.
type Brand struct {
	Name            string
	Tagline         string
	Marquee         string
	MarqueeRepeat   int
	MarqueeDuration time.Duration
}

// Nav holds the header navigation links in display order.
type Nav struct {
	Links []navigation.Link `validate:"dive"`
}
