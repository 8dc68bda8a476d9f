// Package render turns a content snapshot and a view state into HTML.
//
// Rendering is a pure function of its inputs: the same Page always produces
// the same bytes. Badge and Frame are the display primitives; Section renders
// one composite section; Page renders the whole document.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrUnknownSection is returned for a section id that is not on the page.
var ErrUnknownSection = errors.New("unknown section")

// Linker produces the hrefs that dispatch controller operations. The server
// and the static export link differently.
type Linker interface {
	// Toggle returns the href that applies a to s.
	Toggle(s viewstate.State, a viewstate.Action) string
	// Nav returns the href of a mobile navigation link: it lands on anchor
	// with the menu closed.
	Nav(s viewstate.State, anchor string) string
}

// Page is everything one render pass reads.
type Page struct {
	Content *content.Content
	State   viewstate.State
	Links   Linker
	// Year is the footer year, fixed for the whole pass.
	Year int
}

// Theme picks presentation classes for the current dark-mode flag.
type Theme struct {
	Dark bool
}

// Pick returns dark when the theme is dark, light otherwise.
func (t Theme) Pick(dark, light string) string {
	if t.Dark {
		return dark
	}
	return light
}

type navLink struct {
	ID    string
	Label string
	// Href is the mobile panel target; desktop links use the bare anchor.
	Href string
}

// dot is the template environment for a Page.
type dot struct {
	*content.Content
	State    viewstate.State
	Theme    Theme
	Year     int
	Nav      []navLink
	DarkHref string
	MenuHref string
	Sections []template.HTML
}

type badgeDot struct {
	Key   string
	Text  string
	Theme Theme
}

type cardDot struct {
	Project content.Project
	Theme   Theme
}

type frameDot struct {
	Meta  SectionMeta
	Theme Theme
	Body  template.HTML
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the templates and checks that section ids are unique.
func New() (*Renderer, error) {
	seen := map[string]bool{}
	for _, id := range reservedIDs {
		seen[id] = true
	}
	for _, s := range sections {
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate element id %q", s.ID)
		}
		seen[s.ID] = true
	}

	t, err := template.New("page").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	for _, s := range sections {
		if t.Lookup(s.template) == nil {
			return nil, fmt.Errorf("section %q: template %q not defined", s.ID, s.template)
		}
	}
	return &Renderer{tmpl: t}, nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"badge": func(key, text string, th Theme) badgeDot {
			return badgeDot{Key: key, Text: text, Theme: th}
		},
		"card": func(p content.Project, th Theme) cardDot {
			return cardDot{Project: p, Theme: th}
		},
	}
}

// Badge renders a pill label.
func (r *Renderer) Badge(w io.Writer, text string, dark bool) error {
	return r.tmpl.ExecuteTemplate(w, "badge", badgeDot{Text: text, Theme: Theme{Dark: dark}})
}

// Frame wraps body in the section heading block with meta's anchor id.
func (r *Renderer) Frame(w io.Writer, meta SectionMeta, dark bool, body template.HTML) error {
	return r.tmpl.ExecuteTemplate(w, "frame", frameDot{Meta: meta, Theme: Theme{Dark: dark}, Body: body})
}

// Section renders the composite section with the given id.
func (r *Renderer) Section(w io.Writer, id string, p Page) error {
	meta, ok := lookupSection(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	html, err := r.section(meta, r.dot(p))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(html))
	return err
}

func (r *Renderer) section(meta SectionMeta, d *dot) (template.HTML, error) {
	var body bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&body, meta.template, d); err != nil {
		return "", fmt.Errorf("rendering section %q: %w", meta.ID, err)
	}
	if !meta.framed {
		return template.HTML(body.String()), nil
	}
	var framed bytes.Buffer
	if err := r.Frame(&framed, meta, d.Theme.Dark, template.HTML(body.String())); err != nil {
		return "", fmt.Errorf("framing section %q: %w", meta.ID, err)
	}
	return template.HTML(framed.String()), nil
}

// Page renders the full document. Nothing is written to w if rendering fails.
func (r *Renderer) Page(w io.Writer, p Page) error {
	d := r.dot(p)
	for _, meta := range sections {
		html, err := r.section(meta, d)
		if err != nil {
			return err
		}
		d.Sections = append(d.Sections, html)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) dot(p Page) *dot {
	d := &dot{
		Content:  p.Content,
		State:    p.State,
		Theme:    Theme{Dark: p.State.DarkMode},
		Year:     p.Year,
		DarkHref: p.Links.Toggle(p.State, viewstate.ActionToggleDark),
		MenuHref: p.Links.Toggle(p.State, viewstate.ActionToggleMenu),
	}
	for _, s := range navSections() {
		d.Nav = append(d.Nav, navLink{ID: s.ID, Label: s.Nav, Href: p.Links.Nav(p.State, s.ID)})
	}
	return d
}
