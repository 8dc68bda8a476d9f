package cmd

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/export"
	"github.com/Zachkp/portfolio/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Exports the portfolio as a static site",
	Long: `The build command writes one page per theme and menu state into the
output directory (default './public/'), linked so the toggles work without a
server, and copies the images and static directories next to them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig, time.Now())
	},
}

func runBuild(cfg config.Config, now time.Time) error {
	store, err := content.NewStore(cfg.Content)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}
	log.Info().Str("out", cfg.OutputDir).Str("baseURL", cfg.BaseURL).Msg("Starting build")
	err = export.Run(export.Options{
		Content:   store.Current(),
		Renderer:  renderer,
		OutputDir: cfg.OutputDir,
		BaseURL:   cfg.BaseURL,
		ImagesDir: cfg.ImagesDir,
		StaticDir: cfg.StaticDir,
		Now:       now,
	})
	if err != nil {
		return err
	}
	log.Info().Str("out", cfg.OutputDir).Msg("Build complete")
	return nil
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (default ./public)")
	buildCmd.Flags().String("content", "", "content file (.yaml, .toml or .md); built-in content when empty")
}
