// Package config assembles runtime settings for the taskboard CLI from,
// in order of increasing precedence: built-in defaults, environment
// variables (optionally via a .env file), a JSON config file, and
// command-line flags.
package config

// Config holds runtime settings for the taskboard CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend REST API, e.g. "http://localhost:8000/api".
//   - DatabasePath: path of the local SQLite database holding the credential.
//   - LogLevel: minimum level for diagnostic logging (debug|info|warn|error).
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "taskboard.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
