package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionMeta describes one labeled area of the page.
type SectionMeta struct {
	// ID is the anchor the navigation links target; unique page-wide.
	ID     string
	Title  string
	Kicker string
	// Nav is the label of the navigation link, empty for sections that are
	// not listed in the header.
	Nav string

	template string
	framed   bool
}

// sections is the fixed page order.
var sections = func() []SectionMeta {
	caser := cases.Title(language.English)
	nav := func(id string) string { return caser.String(id) }
	return []SectionMeta{
		{ID: "home", template: "hero"},
		{ID: "projects", Title: "Featured Projects", Kicker: "Work that shows impact", Nav: nav("projects"), template: "projects", framed: true},
		{ID: "skills", Title: "Skills", Kicker: "Snapshot", Nav: nav("skills"), template: "skills", framed: true},
		{ID: "experience", Title: "Experience", Kicker: "Recent work", Nav: nav("experience"), template: "experience", framed: true},
		{ID: "about", Title: "About", Kicker: "Who I am", Nav: nav("about"), template: "about", framed: true},
		{ID: "contact", Title: "Contact", Kicker: "Let’s talk", Nav: nav("contact"), template: "contact", framed: true},
	}
}()

// reservedIDs are element ids the page layout itself uses.
var reservedIDs = []string{"main", "mobile-nav", "root"}

// Sections returns the page sections in display order.
func Sections() []SectionMeta {
	out := make([]SectionMeta, len(sections))
	copy(out, sections)
	return out
}

func lookupSection(id string) (SectionMeta, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionMeta{}, false
}

// HasSection reports whether id is the anchor of a page section.
func HasSection(id string) bool {
	_, ok := lookupSection(id)
	return ok
}

// navSections are the sections linked from the header, in order.
func navSections() []SectionMeta {
	var out []SectionMeta
	for _, s := range sections {
		if s.Nav != "" {
			out = append(out, s)
		}
	}
	return out
}
