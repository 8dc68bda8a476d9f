package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/visits"
)

var watchContent bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio over HTTP",
	Long: `The serve command renders the portfolio on each request. Theme and menu
toggles are handled by the server, so the page works without JavaScript.
With --watch the content file is reloaded whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.Dev {
			gin.SetMode(gin.ReleaseMode)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := content.NewStore(appConfig.Content)
		if err != nil {
			return err
		}
		renderer, err := render.New()
		if err != nil {
			return err
		}

		var tracker *visits.Tracker
		if appConfig.VisitsDB != "" {
			tracker, err = visits.Open(ctx, appConfig.VisitsDB)
			if err != nil {
				return err
			}
			defer tracker.Close()
			go func() {
				if _, err := tracker.Cleanup(ctx, time.Now()); err != nil {
					log.Error().Err(err).Msg("Error cleaning up old visitor data")
				}
			}()
		}

		if watchContent {
			go func() {
				if err := store.Watch(ctx); err != nil {
					log.Error().Err(err).Msg("Content watcher stopped")
				}
			}()
		}

		srv, err := server.New(server.Options{
			Store:      store,
			Renderer:   renderer,
			Tracker:    tracker,
			AdminToken: appConfig.AdminToken,
			ImagesDir:  appConfig.ImagesDir,
			StaticDir:  appConfig.StaticDir,
		})
		if err != nil {
			return err
		}
		return srv.Run(ctx, ":"+appConfig.Port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (default 8080, or $PORT)")
	serveCmd.Flags().String("content", "", "content file (.yaml, .toml or .md); built-in content when empty")
	serveCmd.Flags().BoolVar(&watchContent, "watch", false, "reload the content file when it changes")
}
