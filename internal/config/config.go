package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"mentortools-mcp/internal/providers/mentortools"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultBaseURL = mentortools.DefaultBaseURL
	DefaultTimeout = mentortools.DefaultTimeout
	DefaultPort    = 3000
	DefaultHost    = "127.0.0.1"
)

// ErrMissingAPIKey is fatal at startup; the server never runs without a credential.
var ErrMissingAPIKey = errors.New("MENTORTOOLS_API_KEY environment variable is required")

type Config struct {
	// Mentortools
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`

	// Transport
	Transport string `yaml:"transport"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`

	LogLevel string `yaml:"log_level"`

	// Upload sources
	UploadDir                 string `yaml:"upload_dir"`
	SFTPHost                  string `yaml:"sftp_host"`
	SFTPPort                  int    `yaml:"sftp_port"`
	SFTPUser                  string `yaml:"sftp_user"`
	SFTPPass                  string `yaml:"sftp_pass"`
	SFTPKnownHosts            string `yaml:"sftp_known_hosts"`
	SFTPInsecureIgnoreHostKey bool   `yaml:"sftp_insecure_ignore_hostkey"`
}

// Defaults returns the configuration used when neither a file nor the
// environment says otherwise.
func Defaults() Config {
	return Config{
		BaseURL:                   DefaultBaseURL,
		Timeout:                   DefaultTimeout,
		Transport:                 TransportStdio,
		Host:                      DefaultHost,
		Port:                      DefaultPort,
		SFTPPort:                  22,
		SFTPInsecureIgnoreHostKey: true,
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then the environment. Later sources win.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	cfg.APIKey = getenv("MENTORTOOLS_API_KEY", cfg.APIKey)
	cfg.BaseURL = getenv("MENTORTOOLS_BASE_URL", cfg.BaseURL)
	cfg.Timeout = getenvDuration("MENTORTOOLS_TIMEOUT", cfg.Timeout)

	cfg.Transport = strings.ToLower(getenv("TRANSPORT", cfg.Transport))
	cfg.Host = getenv("HOST", cfg.Host)
	cfg.Port = getenvInt("PORT", cfg.Port)

	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	cfg.UploadDir = getenv("MENTORTOOLS_UPLOAD_DIR", cfg.UploadDir)
	cfg.SFTPHost = getenv("SFTP_HOST", cfg.SFTPHost)
	cfg.SFTPPort = getenvInt("SFTP_PORT", cfg.SFTPPort)
	cfg.SFTPUser = getenv("SFTP_USER", cfg.SFTPUser)
	cfg.SFTPPass = getenv("SFTP_PASS", cfg.SFTPPass)
	cfg.SFTPKnownHosts = getenv("SFTP_KNOWN_HOSTS", cfg.SFTPKnownHosts)
	cfg.SFTPInsecureIgnoreHostKey = getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", cfg.SFTPInsecureIgnoreHostKey)
	return cfg
}

// Validate reports configuration that must stop the process before it starts
// serving.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("config: unsupported transport %q (want %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Transport == TransportHTTP && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Addr is the listen address for the HTTP transport.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Usage is printed when the credential is missing.
const Usage = `ERROR: MENTORTOOLS_API_KEY environment variable is required

Usage:
  export MENTORTOOLS_API_KEY=your_api_key
  mentortools-mcp

Or configure it in your MCP client settings.`

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
