// Package viewstate is the navigation/theme controller: the two UI flags the
// page branches on and the operations that change them.
//
// The zero State is the initial state: light theme, mobile menu closed. A
// State travels with the page URL, either as a query string (FromQuery,
// Query) or as a path prefix for the static export (FromPath, Path), and is
// never persisted anywhere else.
package viewstate

import (
	"errors"
	"net/url"
	"strings"
)

// State holds the menu-open and dark-mode flags.
type State struct {
	MenuOpen bool
	DarkMode bool
}

// Action names a controller operation dispatched by the host.
type Action string

const (
	ActionToggleDark Action = "dark"
	ActionToggleMenu Action = "menu"
	ActionCloseMenu  Action = "close"
)

// ErrUnknownAction is returned by Apply for an action it does not know.
var ErrUnknownAction = errors.New("unknown view action")

const (
	darkParam = "dark"
	menuParam = "menu"
)

// ToggleDarkMode flips the theme.
func (s *State) ToggleDarkMode() { s.DarkMode = !s.DarkMode }

// ToggleMenu flips the mobile navigation drawer.
func (s *State) ToggleMenu() { s.MenuOpen = !s.MenuOpen }

// CloseMenu closes the drawer whatever its state.
func (s *State) CloseMenu() { s.MenuOpen = false }

// Apply runs the named operation.
func (s *State) Apply(a Action) error {
	switch a {
	case ActionToggleDark:
		s.ToggleDarkMode()
	case ActionToggleMenu:
		s.ToggleMenu()
	case ActionCloseMenu:
		s.CloseMenu()
	default:
		return ErrUnknownAction
	}
	return nil
}

// After returns the state that results from applying a to s.
func (s State) After(a Action) State {
	_ = s.Apply(a)
	return s
}

// FromQuery reads the flags from a query string. Missing or unparsable flags
// are false.
func FromQuery(q url.Values) State {
	return State{
		MenuOpen: flag(q.Get(menuParam)),
		DarkMode: flag(q.Get(darkParam)),
	}
}

func flag(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Query encodes the flags. Only set flags appear, so the initial state is an
// empty query.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.DarkMode {
		q.Set(darkParam, "1")
	}
	if s.MenuOpen {
		q.Set(menuParam, "1")
	}
	return q
}

// Encode returns the query string for s without the leading "?".
func (s State) Encode() string { return s.Query().Encode() }

// Path is the static-export location of the page for s: "/", "/dark/",
// "/menu/" or "/dark/menu/".
func (s State) Path() string {
	p := "/"
	if s.DarkMode {
		p += darkParam + "/"
	}
	if s.MenuOpen {
		p += menuParam + "/"
	}
	return p
}

// FromPath is the inverse of Path. Unknown segments are ignored.
func FromPath(p string) State {
	var s State
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		switch seg {
		case darkParam:
			s.DarkMode = true
		case menuParam:
			s.MenuOpen = true
		}
	}
	return s
}

// All lists the four reachable states, initial state first.
func All() []State {
	return []State{
		{},
		{DarkMode: true},
		{MenuOpen: true},
		{MenuOpen: true, DarkMode: true},
	}
}
