package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

var (
	cfgFile   string
	appConfig config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio renders a single-page personal portfolio from a content file.
It can serve the page over HTTP, or export it as a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(serveCmd, buildCmd)
}

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"port":    "port",
	"content": "content",
	"out":     "outputDir",
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	config.SetDefaults(v)
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Read(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logCloser, err = logging.Setup(logging.Options{
		Folder:  cfg.LogFolder,
		Level:   cfg.LogLevel,
		Console: cfg.Dev,
	})
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Info().Str("file", used).Msg("Using config file")
	}
	return nil
}
