// Package content holds the portfolio's static content: the profile, the
// project list, the skill groups, the experience entries and the about text.
//
// A *Content value is built once at the data boundary (Default or Load) and
// never mutated afterwards. Placeholder links such as "#" are resolved to an
// absent Link during that build, so rendering code only asks Link.Present.
package content

import "html/template"

// Content is one immutable snapshot of everything the page displays.
type Content struct {
	Profile    Profile
	Projects   []Project
	Skills     []SkillGroup
	Experience []Experience
	About      About
}

// Profile is the portfolio owner's identity and contact affordances.
type Profile struct {
	Name     string
	Role     string
	Location string
	Headline string
	Summary  string
	// Image is the path of the profile picture, resolved by the host.
	Image string

	Email    Link
	GitHub   Link
	Facebook Link
	LinkedIn Link
	Resume   Link
}

// Project is one portfolio entry. Projects are displayed in declared order.
type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []Tag
	Link        Link
	Repo        Link
}

// Tag is a project label keyed by position, so repeated labels stay distinct.
type Tag struct {
	ID    string
	Label string
}

// SkillGroup is a labeled list of skills. Labels are unique across the set.
type SkillGroup struct {
	ID    string
	Label string
	Items []Item
}

// Experience is one role held, with its bullet points in declared order.
type Experience struct {
	ID      string
	Role    string
	Org     string
	Period  string
	Bullets []Item
}

// About is the descriptive prose and the highlights list.
type About struct {
	Body       template.HTML
	Highlights []Item
}

// Item is a line of text keyed by its position in the enclosing list.
type Item struct {
	ID   string
	Text string
}
