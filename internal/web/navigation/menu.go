package navigation

import (
	"net/url"
)

const (
	// MenuQueryKey is the query parameter carrying the mobile menu state.
	MenuQueryKey = "menu"

	// MenuQueryOpen is the MenuQueryKey value of an open menu.
	MenuQueryOpen = "open"

	// ToggleLabel is the accessible label of the menu toggle control.
	ToggleLabel = "Toggle menu"
)

// MenuState is the visibility of the mobile menu.
type MenuState int

const (
	// MenuClosed is the initial state.
	MenuClosed MenuState = iota

	// MenuOpen shows the mobile panel.
	MenuOpen
)

// String implements fmt.Stringer.
func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}

	return "closed"
}

// Menu holds the mobile menu state. The zero value is a closed menu.
type Menu struct {
	state MenuState
}

// MenuFromQuery returns the menu state encoded in the menu query value.
// Anything but "open" is a closed menu.
func MenuFromQuery(value string) Menu {
	if value == MenuQueryOpen {
		return Menu{state: MenuOpen}
	}

	return Menu{}
}

// Toggle flips the menu between closed and open.
func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.state = MenuClosed
		return
	}

	m.state = MenuOpen
}

// Select is called when a link is followed and always closes the menu.
func (m *Menu) Select() {
	m.state = MenuClosed
}

// State returns the current state.
func (m Menu) State() MenuState {
	return m.state
}

// IsOpen reports whether the mobile panel is shown.
func (m Menu) IsOpen() bool {
	return m.state == MenuOpen
}

// ToggleHref returns the link of the toggle control on route.
// It points to route with the toggled menu state.
func (m Menu) ToggleHref(route string) string {
	next := m
	next.Toggle()

	if !next.IsOpen() {
		return route
	}

	return route + "?" + url.Values{MenuQueryKey: []string{MenuQueryOpen}}.Encode()
}
