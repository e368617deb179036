package navigation

import (
	"errors"
)

var (
	// ErrEmptyModel is returned if a model is created without links.
	ErrEmptyModel = errors.New("navigation model needs at least one link")

	// ErrEmptyLabel is returned if a link has no display text.
	ErrEmptyLabel = errors.New("navigation link label can not be empty")

	// ErrEmptyRoute is returned if a link has no route.
	ErrEmptyRoute = errors.New("navigation link route can not be empty")

	// ErrDuplicateRoute is returned if two links share the same route.
	ErrDuplicateRoute = errors.New("navigation link route must be unique")
)
