// Package export writes the portfolio as a static site: one page per view
// state, linked to each other, plus the image and static asset directories.
package export

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

// Options configures an export.
type Options struct {
	Content   *content.Content
	Renderer  *render.Renderer
	OutputDir string
	// BaseURL prefixes every generated link, for sites not served at "/".
	BaseURL   string
	ImagesDir string
	StaticDir string
	Now       time.Time
}

// Run cleans OutputDir and writes the site into it.
func Run(opts Options) error {
	if opts.OutputDir == "" {
		return fmt.Errorf("export: output directory not set")
	}
	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", opts.OutputDir, err)
	}

	links := render.StaticLinker{Base: opts.BaseURL}
	year := opts.Now.Year()
	for _, state := range viewstate.All() {
		var buf bytes.Buffer
		page := render.Page{Content: opts.Content, State: state, Links: links, Year: year}
		if err := opts.Renderer.Page(&buf, page); err != nil {
			return fmt.Errorf("rendering %s: %w", state.Path(), err)
		}
		dst := filepath.Join(opts.OutputDir, filepath.FromSlash(state.Path()), "index.html")
		if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", dst, err)
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		log.Debug().Str("file", dst).Msg("Wrote page")
	}

	assets := []struct{ src, dst string }{
		{opts.ImagesDir, "images"},
		{opts.StaticDir, "static"},
	}
	for _, a := range assets {
		if a.src == "" {
			continue
		}
		if _, err := os.Stat(a.src); os.IsNotExist(err) {
			log.Info().Str("dir", a.src).Msg("Asset directory not found, skipping copy")
			continue
		}
		if err := copyDirContents(a.src, filepath.Join(opts.OutputDir, a.dst)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", a.src, err)
		}
	}
	return nil
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
