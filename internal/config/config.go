package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://api.voyp.app/api/mcp/"

var ErrMissingAPIKey = errors.New("VOYP_API_KEY environment variable is required")

// Config is the resolved process configuration.
type Config struct {
	APIKey      string
	BaseURL     string
	LogLevel    string
	HTTPTimeout time.Duration
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	if root != nil {
		for flag, key := range flagKeys {
			if f := root.PersistentFlags().Lookup(flag); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

// LoadEnvFile populates the process environment from the configured dotenv
// file. Variables already present in the environment are kept. Call it once
// flags are parsed, e.g. from the root command's PersistentPreRunE, so
// --env-file is honored.
func LoadEnvFile() {
	_ = godotenv.Load(EnvFile())
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHTTPTimeout, "")
	viper.SetDefault(KeyEnvFile, ".env")
}

func APIKey() string      { return viper.GetString(KeyAPIKey) }
func BaseURL() string     { return viper.GetString(KeyBaseURL) }
func LogLevel() string    { return viper.GetString(KeyLogLevel) }
func HTTPTimeout() string { return viper.GetString(KeyHTTPTimeout) }
func EnvFile() string     { return viper.GetString(KeyEnvFile) }

// Load resolves the configuration. A missing API key is reported as
// ErrMissingAPIKey so callers can refuse to start.
func Load() (Config, error) {
	cfg := Config{
		APIKey:   strings.TrimSpace(APIKey()),
		BaseURL:  strings.TrimSpace(BaseURL()),
		LogLevel: strings.ToLower(strings.TrimSpace(LogLevel())),
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	timeout, err := parseDuration(HTTPTimeout(), 0)
	if err != nil {
		return Config{}, fmt.Errorf("invalid http_timeout: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid http_timeout: %s is negative", timeout)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
