package render

import (
	"strings"

	"github.com/Zachkp/portfolio/internal/viewstate"
)

// StaticLinker links between the pages of a static export, one page per
// view state (see viewstate.State.Path), under Base.
type StaticLinker struct {
	Base string
}

func (l StaticLinker) root() string { return strings.TrimSuffix(l.Base, "/") }

func (l StaticLinker) Toggle(s viewstate.State, a viewstate.Action) string {
	return l.root() + s.After(a).Path()
}

func (l StaticLinker) Nav(s viewstate.State, anchor string) string {
	return l.root() + s.After(viewstate.ActionCloseMenu).Path() + "#" + anchor
}
