// Package navigation provides the site header navigation: the fixed link model,
// the active route highlighting and the mobile menu state.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Item is a link prepared for rendering.
type Item struct {
	Label  string
	Route  string
	Active bool
	Class  string
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle    string
	CurrentRoute string
	Items        []Item
	Menu         Menu
	ToggleHref   string
	ToggleLabel  string
	Breadcrumbs  []BreadcrumbItem
}

// NewContext creates the navigation context of a single render.
// Items are derived from model once, desktop and mobile menu both range over them.
func NewContext(model *Model, pageTitle, currentRoute string, menu Menu) *Context {
	c := &Context{
		PageTitle:    pageTitle,
		CurrentRoute: currentRoute,
		Menu:         menu,
		ToggleHref:   menu.ToggleHref(currentRoute),
		ToggleLabel:  ToggleLabel,
		Breadcrumbs:  make([]BreadcrumbItem, 0),
	}

	if model == nil {
		return c
	}

	c.Items = make([]Item, 0, model.Len())

	for _, l := range model.links {
		c.Items = append(c.Items, Item{
			Label:  l.Label,
			Route:  l.Route,
			Active: IsActive(currentRoute, l.Route),
			Class:  HighlightClass(currentRoute, l.Route),
		})
	}

	return c
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// MenuOpen reports whether the mobile panel has to be rendered.
func (c *Context) MenuOpen() bool {
	return c.Menu.IsOpen()
}
