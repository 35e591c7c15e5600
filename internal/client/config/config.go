package config

import "time"

// Config holds runtime settings for the FileVault CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - TokenFile: where the access token is cached between invocations.
//     Empty means <user config dir>/filevault/token.
//   - RequestTimeout: upper bound for a single command's round trips.
type Config struct {
	ServerEndpointAddr string
	TokenFile          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TokenFile = ""
	c.RequestTimeout = 30 * time.Second
}

// ValueFlags lists the flags that consume the following argument. The CLI
// uses it to separate flags from the command and its arguments.
var ValueFlags = []string{"-a", "-token", "-timeout", "-c", "-config"}

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
