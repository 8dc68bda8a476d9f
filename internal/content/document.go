package content

import (
	"fmt"
	"strings"
)

// Document is the raw, file-shaped form of the content. Links are plain
// strings here and may hold placeholders; Build turns a Document into a
// Content snapshot.
type Document struct {
	Profile    ProfileDoc      `yaml:"profile" toml:"profile"`
	Projects   []ProjectDoc    `yaml:"projects" toml:"projects" validate:"dive"`
	Skills     []SkillGroupDoc `yaml:"skills" toml:"skills" validate:"unique=Group,dive"`
	Experience []ExperienceDoc `yaml:"experience" toml:"experience" validate:"dive"`
	About      AboutDoc        `yaml:"about" toml:"about"`
}

type ProfileDoc struct {
	Name      string `yaml:"name" toml:"name" validate:"required"`
	Role      string `yaml:"role" toml:"role"`
	Location  string `yaml:"location" toml:"location"`
	Headline  string `yaml:"headline" toml:"headline"`
	Summary   string `yaml:"summary" toml:"summary"`
	Image     string `yaml:"image" toml:"image"`
	Email     string `yaml:"email" toml:"email" validate:"omitempty,email|eq=#"`
	GitHub    string `yaml:"github" toml:"github" validate:"link"`
	Facebook  string `yaml:"facebook" toml:"facebook" validate:"link"`
	LinkedIn  string `yaml:"linkedin" toml:"linkedin" validate:"link"`
	ResumeURL string `yaml:"resumeUrl" toml:"resumeUrl" validate:"link"`
}

type ProjectDoc struct {
	Title       string   `yaml:"title" toml:"title" validate:"required"`
	Description string   `yaml:"description" toml:"description"`
	Tags        []string `yaml:"tags" toml:"tags" validate:"dive,required"`
	Link        string   `yaml:"link" toml:"link" validate:"link"`
	Repo        string   `yaml:"repo" toml:"repo" validate:"link"`
}

type SkillGroupDoc struct {
	Group string   `yaml:"group" toml:"group" validate:"required"`
	Items []string `yaml:"items" toml:"items" validate:"dive,required"`
}

type ExperienceDoc struct {
	Role    string   `yaml:"role" toml:"role" validate:"required"`
	Org     string   `yaml:"org" toml:"org"`
	Period  string   `yaml:"period" toml:"period"`
	Bullets []string `yaml:"bullets" toml:"bullets" validate:"min=1,dive,required"`
}

// AboutDoc holds the about prose as markdown.
type AboutDoc struct {
	Body       string   `yaml:"body" toml:"body"`
	Highlights []string `yaml:"highlights" toml:"highlights" validate:"dive,required"`
}

// Build validates d and converts it into an immutable Content.
func (d *Document) Build() (*Content, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	body, err := renderMarkdown(d.About.Body)
	if err != nil {
		return nil, fmt.Errorf("about body: %w", err)
	}

	p := d.Profile
	c := &Content{
		Profile: Profile{
			Name:     strings.TrimSpace(p.Name),
			Role:     p.Role,
			Location: p.Location,
			Headline: p.Headline,
			Summary:  p.Summary,
			Image:    p.Image,
			Email:    emailLink(p.Email),
			GitHub:   NewLink(p.GitHub),
			Facebook: NewLink(p.Facebook),
			LinkedIn: NewLink(p.LinkedIn),
			Resume:   NewLink(p.ResumeURL),
		},
		About: About{
			Body:       body,
			Highlights: items("about-highlight", d.About.Highlights),
		},
	}

	c.Projects = make([]Project, len(d.Projects))
	for i, pd := range d.Projects {
		id := fmt.Sprintf("project-%d", i)
		tags := make([]Tag, len(pd.Tags))
		for j, label := range pd.Tags {
			tags[j] = Tag{ID: fmt.Sprintf("%s-tag-%d", id, j), Label: label}
		}
		c.Projects[i] = Project{
			ID:          id,
			Title:       pd.Title,
			Description: pd.Description,
			Tags:        tags,
			Link:        NewLink(pd.Link),
			Repo:        NewLink(pd.Repo),
		}
	}

	c.Skills = make([]SkillGroup, len(d.Skills))
	for i, sd := range d.Skills {
		id := fmt.Sprintf("skills-%d", i)
		c.Skills[i] = SkillGroup{ID: id, Label: sd.Group, Items: items(id+"-item", sd.Items)}
	}

	c.Experience = make([]Experience, len(d.Experience))
	for i, ed := range d.Experience {
		id := fmt.Sprintf("experience-%d", i)
		c.Experience[i] = Experience{
			ID:      id,
			Role:    ed.Role,
			Org:     ed.Org,
			Period:  ed.Period,
			Bullets: items(id+"-bullet", ed.Bullets),
		}
	}
	return c, nil
}

func items(prefix string, texts []string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{ID: fmt.Sprintf("%s-%d", prefix, i), Text: t}
	}
	return out
}
