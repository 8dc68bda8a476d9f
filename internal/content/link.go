package content

import "strings"

// DefaultEmail is the placeholder address shipped in content templates.
const DefaultEmail = "you@example.com"

// Link is an optional link target. The zero value is absent.
type Link struct {
	target string
}

// NewLink returns the link for raw, or an absent link when raw is empty, "#"
// or one of the extra placeholders.
func NewLink(raw string, placeholders ...string) Link {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "#" {
		return Link{}
	}
	for _, p := range placeholders {
		if raw == p {
			return Link{}
		}
	}
	return Link{target: raw}
}

// emailLink builds the email affordance; the default address counts as absent.
func emailLink(raw string) Link {
	return NewLink(raw, DefaultEmail)
}

// Present reports whether the link has a real target.
func (l Link) Present() bool { return l.target != "" }

// String returns the target, or "" when absent.
func (l Link) String() string { return l.target }

// Mailto returns the mailto: href for an email link.
func (l Link) Mailto() string {
	if !l.Present() {
		return ""
	}
	return "mailto:" + l.target
}
