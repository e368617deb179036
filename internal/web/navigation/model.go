package navigation

import (
	"github.com/pkg/errors"
)

// Link represents one navigable destination.
type Link struct {
	Label string `toml:"label" validate:"required"`
	Route string `toml:"route" validate:"required,startswith=/"`
}

// DefaultLinks is the site navigation used when the config does not define one.
var DefaultLinks = []Link{ //nolint:gochecknoglobals
	{Label: "Home", Route: "/"},
	{Label: "Fleet", Route: "/fleet"},
	{Label: "Services", Route: "/services"},
	{Label: "About", Route: "/about"},
	{Label: "Contact", Route: "/contact"},
}

// Model is the fixed ordered list of navigation links.
// It is built once and shared by the desktop and the mobile menu.
type Model struct {
	links []Link
}

// NewModel creates a model from the given links.
// The order of the links is kept, routes have to be unique.
func NewModel(links ...Link) (*Model, error) {
	if len(links) == 0 {
		return nil, ErrEmptyModel
	}

	seen := make(map[string]struct{}, len(links))
	m := &Model{links: make([]Link, 0, len(links))}

	for _, l := range links {
		if l.Label == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "route %q", l.Route)
		}

		if l.Route == "" {
			return nil, errors.Wrapf(ErrEmptyRoute, "label %q", l.Label)
		}

		if _, ok := seen[l.Route]; ok {
			return nil, errors.Wrapf(ErrDuplicateRoute, "route %q", l.Route)
		}

		seen[l.Route] = struct{}{}
		m.links = append(m.links, l)
	}

	return m, nil
}

// Links returns a copy of the links in their configured order.
func (m *Model) Links() []Link {
	out := make([]Link, len(m.links))
	copy(out, m.links)

	return out
}

// Len returns the number of links.
func (m *Model) Len() int {
	return len(m.links)
}

// Lookup returns the link registered for route.
func (m *Model) Lookup(route string) (Link, bool) {
	if i := m.ActiveIndex(route); i >= 0 {
		return m.links[i], true
	}

	return Link{}, false
}

// ActiveIndex returns the index of the link matching currentRoute or -1.
func (m *Model) ActiveIndex(currentRoute string) int {
	for i := range m.links {
		if IsActive(currentRoute, m.links[i].Route) {
			return i
		}
	}

	return -1
}
