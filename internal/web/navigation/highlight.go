package navigation

const (
	// ClassActive is the style token of the highlighted link.
	ClassActive = "text-yellow-400"

	// ClassInactive is the style token of every other link.
	ClassInactive = "text-primary-foreground"
)

// IsActive reports whether route is the current route.
// The comparison is literal: no trailing slash or case normalization and no prefix match.
func IsActive(currentRoute, route string) bool {
	return currentRoute == route
}

// HighlightClass returns the style token for a link pointing to route.
func HighlightClass(currentRoute, route string) string {
	if IsActive(currentRoute, route) {
		return ClassActive
	}

	return ClassInactive
}
