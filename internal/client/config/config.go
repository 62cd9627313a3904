package config

import (
	"os"
	"time"
)

// APIKeyEnvVar is the environment variable consulted for the Gemini API key.
// An empty key is not an error: the client then serves the deterministic
// fallback holiday set instead of calling the remote model.
const APIKeyEnvVar = "GEMINI_API_KEY"

// Config holds runtime settings for the TimeFlux CLI.
//
// Fields:
//   - StorePath: path of the local key/value store file.
//   - APIKey: Gemini API key, taken from GEMINI_API_KEY by default.
//   - GeminiModel: model used for holiday generation.
//   - RefreshSpec: cron spec for the background cache freshness re-check.
//   - TickInterval: how often the shared "now" snapshot is refreshed.
type Config struct {
	StorePath    string
	APIKey       string
	GeminiModel  string
	RefreshSpec  string
	TickInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "timeflux.yaml"
	c.APIKey = os.Getenv(APIKeyEnvVar)
	c.GeminiModel = "gemini-2.5-flash"
	c.RefreshSpec = "@every 1m"
	c.TickInterval = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
