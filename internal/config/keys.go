package config

const (
	KeyAPIKey      = "voyp_api_key"
	KeyBaseURL     = "voyp_base_url"
	KeyLogLevel    = "log_level"
	KeyHTTPTimeout = "http_timeout"
	KeyEnvFile     = "env_file"
)

// flagKeys maps persistent flag names to the viper keys they override.
var flagKeys = map[string]string{
	"voyp-api-key":  KeyAPIKey,
	"voyp-base-url": KeyBaseURL,
	"log-level":     KeyLogLevel,
	"http-timeout":  KeyHTTPTimeout,
	"env-file":      KeyEnvFile,
}
