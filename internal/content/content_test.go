package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		placeholders []string
		present      bool
		target       string
	}{
		{"empty", "", nil, false, ""},
		{"hash", "#", nil, false, ""},
		{"hash with spaces", "  # ", nil, false, ""},
		{"url", "https://github.com/someone", nil, true, "https://github.com/someone"},
		{"extra placeholder", DefaultEmail, []string{DefaultEmail}, false, ""},
		{"not a placeholder", "me@example.org", []string{DefaultEmail}, true, "me@example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLink(tt.raw, tt.placeholders...)
			assert.Equal(t, tt.present, l.Present())
			assert.Equal(t, tt.target, l.String())
		})
	}
}

func TestEmailLink(t *testing.T) {
	assert.False(t, emailLink(DefaultEmail).Present())
	assert.False(t, emailLink("#").Present())
	assert.Equal(t, "", Link{}.Mailto())

	l := emailLink("dev@example.org")
	require.True(t, l.Present())
	assert.Equal(t, "mailto:dev@example.org", l.Mailto())
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())

	assert.Equal(t, "Bermel F. Mendoza", c.Profile.Name)
	assert.True(t, c.Profile.GitHub.Present())
	assert.True(t, c.Profile.Email.Present())
	assert.False(t, c.Profile.Resume.Present())

	require.Len(t, c.Projects, 3)
	assert.True(t, c.Projects[0].Link.Present())
	assert.False(t, c.Projects[0].Repo.Present())
	assert.False(t, c.Projects[1].Link.Present())

	require.Len(t, c.Skills, 4)
	require.Len(t, c.Experience, 1)
	assert.Len(t, c.Experience[0].Bullets, 4)
	assert.Len(t, c.About.Highlights, 5)
	assert.Contains(t, string(c.About.Body), "<p>")
}

func TestBuildAssignsPositionalKeys(t *testing.T) {
	doc := &Document{
		Profile:  ProfileDoc{Name: "Jane"},
		Projects: []ProjectDoc{{Title: "A", Tags: []string{"Go", "Go", "SQL"}}},
		Experience: []ExperienceDoc{
			{Role: "Dev", Bullets: []string{"same", "same"}},
		},
	}
	c, err := doc.Build()
	require.NoError(t, err)

	want := []Tag{
		{ID: "project-0-tag-0", Label: "Go"},
		{ID: "project-0-tag-1", Label: "Go"},
		{ID: "project-0-tag-2", Label: "SQL"},
	}
	if diff := cmp.Diff(want, c.Projects[0].Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	wantBullets := []Item{
		{ID: "experience-0-bullet-0", Text: "same"},
		{ID: "experience-0-bullet-1", Text: "same"},
	}
	if diff := cmp.Diff(wantBullets, c.Experience[0].Bullets); diff != "" {
		t.Errorf("bullets mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildResolvesPlaceholders(t *testing.T) {
	doc := &Document{Profile: ProfileDoc{
		Name:      "Jane",
		Email:     DefaultEmail,
		GitHub:    "#",
		LinkedIn:  "https://www.linkedin.com/in/jane",
		ResumeURL: "/static/resume.pdf",
	}}
	c, err := doc.Build()
	require.NoError(t, err)

	p := c.Profile
	assert.False(t, p.Email.Present())
	assert.False(t, p.GitHub.Present())
	assert.False(t, p.Facebook.Present())
	assert.Equal(t, "https://www.linkedin.com/in/jane", p.LinkedIn.String())
	assert.Equal(t, "/static/resume.pdf", p.Resume.String())
}

func TestValidate(t *testing.T) {
	valid := func() *Document {
		return &Document{
			Profile:    ProfileDoc{Name: "Jane", Email: "#", GitHub: "https://github.com/jane"},
			Skills:     []SkillGroupDoc{{Group: "Languages", Items: []string{"Go"}}},
			Experience: []ExperienceDoc{{Role: "Dev", Bullets: []string{"shipped"}}},
		}
	}
	tests := []struct {
		name    string
		mutate  func(d *Document)
		wantErr string
	}{
		{"valid", func(d *Document) {}, ""},
		{"missing name", func(d *Document) { d.Profile.Name = "" }, "profile.name"},
		{"bad link", func(d *Document) { d.Profile.GitHub = "github dot com" }, "profile.github"},
		{"bad email", func(d *Document) { d.Profile.Email = "nope" }, "profile.email"},
		{"duplicate skill group", func(d *Document) {
			d.Skills = append(d.Skills, SkillGroupDoc{Group: "Languages"})
		}, "skills"},
		{"no bullets", func(d *Document) { d.Experience[0].Bullets = nil }, "experience[0].bullets"},
		{"empty bullet", func(d *Document) { d.Experience[0].Bullets = []string{""} }, "experience[0].bullets[0]"},
		{"empty tag", func(d *Document) {
			d.Projects = []ProjectDoc{{Title: "A", Tags: []string{""}}}
		}, "projects[0].tags[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			err := Validate(d)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

const yamlDoc = `
profile:
  name: Jane Doe
  role: Backend Engineer
  email: you@example.com
  github: https://github.com/jane
  linkedin: "#"
projects:
  - title: Shortener
    tags: [Go, SQLite]
    link: https://short.example.org
    repo: "#"
skills:
  - group: Languages
    items: [Go]
experience:
  - role: Engineer
    org: Acme
    period: 2020 — Present
    bullets: [Built things]
about:
  body: Hello **there**.
  highlights: [APIs]
`

const tomlDoc = `
[profile]
name = "Jane Doe"
github = "#"

[[projects]]
title = "Shortener"
tags = ["Go"]

[[experience]]
role = "Engineer"
bullets = ["Built things"]
`

const markdownDoc = `---
profile:
  name: Jane Doe
experience:
  - role: Engineer
    bullets: [Built things]
---
I write *Go*.
`

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		doc, err := Decode(".yaml", strings.NewReader(yamlDoc))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", doc.Profile.Name)
		assert.Equal(t, []string{"Go", "SQLite"}, doc.Projects[0].Tags)
		assert.Equal(t, "Hello **there**.", doc.About.Body)
	})
	t.Run("yaml unknown field", func(t *testing.T) {
		_, err := Decode(".yml", strings.NewReader("profile:\n  nickname: x\n"))
		assert.Error(t, err)
	})
	t.Run("toml", func(t *testing.T) {
		doc, err := Decode(".toml", strings.NewReader(tomlDoc))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", doc.Profile.Name)
		assert.Equal(t, "#", doc.Profile.GitHub)
		require.Len(t, doc.Experience, 1)
	})
	t.Run("toml unknown key", func(t *testing.T) {
		_, err := Decode(".toml", strings.NewReader("[profile]\nnickname = \"x\"\n"))
		assert.Error(t, err)
	})
	t.Run("markdown", func(t *testing.T) {
		doc, err := Decode(".md", strings.NewReader(markdownDoc))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", doc.Profile.Name)
		assert.Contains(t, doc.About.Body, "I write *Go*.")
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := Decode(".json", strings.NewReader("{}"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.Profile.Email.Present())
	assert.False(t, c.Profile.LinkedIn.Present())
	assert.Equal(t, "https://github.com/jane", c.Profile.GitHub.String())
	assert.Contains(t, string(c.About.Body), "<strong>there</strong>")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.md")
	require.NoError(t, os.WriteFile(path, []byte(markdownDoc), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)
	first := s.Current()
	assert.Equal(t, "Jane Doe", first.Profile.Name)

	require.NoError(t, os.WriteFile(path, []byte("---\nprofile:\n  name: \"\"\n---\n"), 0o644))
	assert.Error(t, s.Reload())
	assert.Same(t, first, s.Current())

	builtin, err := NewStore("")
	require.NoError(t, err)
	assert.Same(t, Default(), builtin.Current())
}

func TestStoreWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.md")
	require.NoError(t, os.WriteFile(path, []byte(markdownDoc), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	updated := strings.Replace(markdownDoc, "Jane Doe", "John Roe", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return s.Current().Profile.Name == "John Roe"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStoreWatchBuiltin(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)
	assert.NoError(t, s.Watch(context.Background()))
}
