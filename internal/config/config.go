package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the runtime configuration for serve and build.
type Config struct {
	Port      string `mapstructure:"port"`
	Content   string `mapstructure:"content"`
	ImagesDir string `mapstructure:"imagesDir"`
	StaticDir string `mapstructure:"staticDir"`
	OutputDir string `mapstructure:"outputDir"`
	BaseURL   string `mapstructure:"baseURL"`

	// VisitsDB is the sqlite file for visitor statistics; empty disables tracking.
	VisitsDB   string `mapstructure:"visitsDB"`
	AdminToken string `mapstructure:"adminToken"`

	LogFolder string `mapstructure:"logFolder"`
	LogLevel  string `mapstructure:"logLevel"`
	Dev       bool   `mapstructure:"dev"`
}

// SetDefaults registers defaults and env bindings on v. Keys are read from
// PORTFOLIO_<KEY>; the bare PORT variable is honored for the port.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("content", "")
	v.SetDefault("imagesDir", "images")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("visitsDB", "")
	v.SetDefault("adminToken", "")
	v.SetDefault("logFolder", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("dev", false)

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORTFOLIO_PORT", "PORT")
}

// Read loads the config file (explicit path, or ./config.yaml if present)
// and decodes v into a Config. A missing default config file is not an error.
func Read(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
