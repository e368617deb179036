package handler

import (
	"errors"
)

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// TemplateExtension is the file extension of the view templates.
	TemplateExtension = ".gohtml"
)

// ErrNilDeps is returned by Init if app, cfg or the navigation model is nil.
var ErrNilDeps = errors.New("app, cfg or navigation model is nil")
