package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Values come from an optional
// config file, a .env file if present, and MEDPREP_* environment
// variables, in increasing order of precedence.
type Config struct {
	APIBaseURL  string        `mapstructure:"api_base_url"` // results/progress backend
	APIToken    string        `mapstructure:"-"`            // bearer token loaded from environment
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"` // "json" or "pretty"
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	Offline     bool          `mapstructure:"offline"` // skip result submission entirely
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetConfigName("medprep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/medprep")

	v.SetDefault("api_base_url", "https://api.medprep.example.com")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "pretty")
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("offline", false)

	v.SetEnvPrefix("MEDPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api_token", "MEDPREP_API_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.APIToken = v.GetString("api_token")

	return &cfg, nil
}
