// Package page renders the site pages, one per navigation link.
package page

import (
	"io/fs"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/superior-limousine/website/internal/config"
	"github.com/superior-limousine/website/internal/web/handler"
	"github.com/superior-limousine/website/internal/web/navigation"
)

const (
	// TemplateDir is the template folder of the pages.
	TemplateDir = "pages/"

	// DefaultTemplate renders links that have no page template of their own.
	DefaultTemplate = TemplateDir + "default"

	// NotFoundTemplate is rendered for unknown routes.
	NotFoundTemplate = "errors/404"

	// HomeSlug is the template name of the root route.
	HomeSlug = "home"

	notFoundTitle = "Page not found"
	otherRoute    = "other"
)

var (
	pageViews = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "site_page_views_total",
			Help: "Number of rendered pages, differentiated by navigation route.",
		},
		[]string{"route"},
	)

	menuRenders = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "site_menu_renders_total",
			Help: "Number of rendered pages, differentiated by mobile menu state.",
		},
		[]string{"state"},
	)
)

var _ handler.Service = (*Service)(nil)

// Service is the page handler service.
type Service struct {
	cfg       *config.Config
	nav       *navigation.Model
	brand     handler.Brand
	templates map[string]string // route -> template name
}

// Init registers a GET route for every navigation link.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Config == nil || deps.Nav == nil {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Config
	s.nav = deps.Nav
	s.brand = handler.NewBrand(deps.Config.Brand)
	s.templates = make(map[string]string, deps.Nav.Len())

	for _, l := range deps.Nav.Links() {
		name := TemplateName(deps.Templates, l.Route)
		s.templates[l.Route] = name

		app.Get(l.Route, s.Get)

		log.Debug().
			Str("route", l.Route).
			Str("label", l.Label).
			Str("template", name).
			Msg("page route registered")
	}

	return nil
}

// Get renders the page of the requested navigation link.
func (s *Service) Get(c *fiber.Ctx) error {
	route := c.Path()

	link, ok := s.nav.Lookup(route)
	if !ok {
		return s.NotFound(c)
	}

	nav := s.context(c, link.Label, route).
		AddBreadcrumb(s.homeLabel(), handler.RootPath, route == handler.RootPath)

	if route != handler.RootPath {
		nav.AddBreadcrumb(link.Label, route, true)
	}

	pageViews.WithLabelValues(route).Inc()

	return c.Render(s.templates[route], s.data(nav), handler.BaseLayout)
}

// NotFound renders the 404 page. The navbar is kept and has no highlighted link.
func (s *Service) NotFound(c *fiber.Ctx) error {
	nav := s.context(c, notFoundTitle, c.Path())

	pageViews.WithLabelValues(otherRoute).Inc()

	log.Debug().Str("path", c.Path()).Msg("page not found")

	return c.Status(fiber.StatusNotFound).Render(NotFoundTemplate, s.data(nav), handler.BaseLayout)
}

// context builds the navigation of one render from the request path and the menu query.
func (s *Service) context(c *fiber.Ctx, title, route string) *navigation.Context {
	menu := navigation.MenuFromQuery(c.Query(navigation.MenuQueryKey))
	menuRenders.WithLabelValues(menu.State().String()).Inc()

	return navigation.NewContext(s.nav, title, route, menu)
}

func (s *Service) data(nav *navigation.Context) fiber.Map {
	return fiber.Map{
		"Title":      s.cfg.Title,
		"Brand":      s.brand,
		"Navigation": nav,
	}
}

func (s *Service) homeLabel() string {
	if l, ok := s.nav.Lookup(handler.RootPath); ok {
		return l.Label
	}

	return "Home"
}

// Slug returns the template base name of route: "/" is "home", "/a/b" is "a-b".
func Slug(route string) string {
	slug := strings.Trim(route, "/")
	if slug == "" {
		return HomeSlug
	}

	return strings.ReplaceAll(slug, "/", "-")
}

// TemplateName returns the page template of route.
// Routes without a template file in templates use DefaultTemplate.
// A nil templates assumes every page template exists.
func TemplateName(templates fs.FS, route string) string {
	name := TemplateDir + Slug(route)

	if templates == nil {
		return name
	}

	if _, err := fs.Stat(templates, name+handler.TemplateExtension); err != nil {
		return DefaultTemplate
	}

	return name
}
