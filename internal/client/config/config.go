package config

import "time"

// Config holds runtime settings for the Pennwest Connect client.
//
// Fields:
//   - APIBaseURL: base address of the REST backend. A missing scheme is
//     tolerated here and corrected (with a diagnostic) by the API layer.
//   - RequestTimeout: ceiling for one HTTP round-trip.
//   - DataDir: where the token file and preview spool live.
//   - DownloadDir: where downloaded note files are saved.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults matching a local
// development backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.DataDir = ".pwc"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from the environment (including a .env file, if present), a
// JSON file, and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
