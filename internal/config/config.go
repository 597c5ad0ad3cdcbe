// Package config handles store and prompt configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/hb/config.yml.
type Config struct {
	Driver string `yaml:"driver,omitempty"` // sqlite or postgres
	DSN    string `yaml:"dsn,omitempty"`    // SQLite file path or Postgres connection string
	Prompt string `yaml:"prompt,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME and XDG_DATA_HOME.
	ConfigDir = "hb"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DBFile is the default SQLite database file name.
	DBFile = "hackbright.db"

	DefaultDriver = "sqlite"
	DefaultPrompt = "HBA Database> "
)

// Environment variables that override the config file.
const (
	EnvDriver = "HB_DB_DRIVER"
	EnvDSN    = "HB_DB_DSN"
	EnvPrompt = "HB_PROMPT"
)

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/hb/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// DefaultDSN returns the default SQLite database path.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/hb/hackbright.db.
func DefaultDSN() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DBFile
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, ConfigDir, DBFile)
}

// Load reads the config file, applies environment overrides, and fills in
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFile reads a config file without applying overrides or defaults.
// Returns an empty config if the file doesn't exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDriver); v != "" {
		c.Driver = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		c.DSN = v
	}
	if v := os.Getenv(EnvPrompt); v != "" {
		c.Prompt = v
	}
}

func (c *Config) applyDefaults() {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.DSN == "" && c.Driver == DefaultDriver {
		c.DSN = DefaultDSN()
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Driver == DefaultDriver {
		c.DSN = ExpandTilde(c.DSN)
	}
}

// Validate checks that a store can be opened from the config.
func (c *Config) Validate() error {
	switch c.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported driver %q (want sqlite or postgres)", c.Driver)
	}
	if c.DSN == "" {
		return fmt.Errorf("dsn is required for driver %s", c.Driver)
	}
	return nil
}

// EnsureDataDir creates the parent directory of a SQLite database file.
// It does nothing for other drivers or in-memory databases.
func (c *Config) EnsureDataDir() error {
	if c.Driver != DefaultDriver || c.DSN == ":memory:" || strings.HasPrefix(c.DSN, "file:") {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.DSN), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}

// RedactedDSN returns the DSN with any password replaced, for display.
func (c *Config) RedactedDSN() string {
	if c.Driver != "postgres" {
		return c.DSN
	}
	if u, err := url.Parse(c.DSN); err == nil && u.Scheme != "" {
		return u.Redacted()
	}
	// key=value form
	fields := strings.Fields(c.DSN)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// HelpfulConfigMessage explains where configuration comes from.
func HelpfulConfigMessage() string {
	configPath := Path()
	return fmt.Sprintf(`Tip: Create %s to choose a store:
  mkdir -p %s
  printf 'driver: postgres\ndsn: postgresql:///hackbright?sslmode=disable\n' > %s

Or set %s and %s (a .env file in the working directory is read too).`,
		configPath,
		filepath.Dir(configPath),
		configPath,
		EnvDriver, EnvDSN)
}
