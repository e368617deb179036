// Package handler holds the shared types of the web handlers.
package handler

import (
	"io/fs"

	"github.com/gofiber/fiber/v2"

	"github.com/superior-limousine/website/internal/config"
	"github.com/superior-limousine/website/internal/web/navigation"
)

// Deps bundles what a handler needs to register and render its routes.
type Deps struct {
	Config    *config.Config
	Nav       *navigation.Model
	Templates fs.FS // template tree used to check which page templates exist
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps) error
}
