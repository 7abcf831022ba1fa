package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

type Log struct {
	Path       string `env:"PATH" yaml:"path"`
	Level      string `env:"LEVEL" yaml:"level"`
	MaxSize    int    `env:"MAX_SIZE" yaml:"max_size"` // megabytes
	MaxBackups int    `env:"MAX_BACKUPS" yaml:"max_backups"`
	MaxAge     int    `env:"MAX_AGE" yaml:"max_age"` // days
}

type Journal struct {
	Driver      string `env:"DRIVER" yaml:"driver"`
	Path        string `env:"PATH" yaml:"path"`
	DatabaseURL string `env:"DATABASE_URL" yaml:"database_url"`
}

type Config struct {
	Development bool `env:"DEVELOPMENT" yaml:"development"`
	FieldSize   int  `env:"MINES_FIELD_SIZE" yaml:"field_size"`
	// Mines is asked for interactively when negative.
	Mines int    `env:"MINES_COUNT" yaml:"mines"`
	Seed  uint64 `env:"MINES_SEED" yaml:"seed"`
	Color bool   `env:"MINES_COLOR" yaml:"color"`

	Log     Log     `envPrefix:"MINES_LOG_" yaml:"log"`
	Journal Journal `envPrefix:"MINES_JOURNAL_" yaml:"journal"`
}

func dataDir() string {
	if dir, ok := os.LookupEnv("XDG_DATA_HOME"); ok && dir != "" {
		return filepath.Join(dir, "minesweeper")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "minesweeper")
}

func Default() *Config {
	return &Config{
		FieldSize: 9,
		Mines:     -1,
		Color:     true,
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Journal: Journal{
			Driver: DriverSQLite,
			Path:   filepath.Join(dataDir(), "journal.db"),
		},
	}
}

// Load starts from [Default], applies the YAML file at path if path is not
// empty, then applies environment variables. The result is not validated.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return c, nil
}

func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Mines < 0 {
		if c.Mines != -1 {
			result = multierror.Append(result, fmt.Errorf("mine count must be -1 (ask) or non-negative, got %d", c.Mines))
		}
		if err := mines.Validate(c.FieldSize, 0); err != nil {
			result = multierror.Append(result, err)
		}
	} else if err := mines.Validate(c.FieldSize, c.Mines); err != nil {
		result = multierror.Append(result, err)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		result = multierror.Append(result, fmt.Errorf("log rotation limits must not be negative"))
	}

	switch c.Journal.Driver {
	case DriverNone:
	case DriverSQLite:
		if c.Journal.Path == "" {
			result = multierror.Append(result, fmt.Errorf("sqlite journal needs a path"))
		}
	case DriverPostgres:
		if c.Journal.DatabaseURL == "" {
			result = multierror.Append(result, fmt.Errorf("postgres journal needs a database url"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown journal driver %q", c.Journal.Driver))
	}

	return result.ErrorOrNil()
}

// Fields is what gets logged on startup; the database url is left out.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"development":    c.Development,
		"field_size":     c.FieldSize,
		"mines":          c.Mines,
		"seed":           c.Seed,
		"color":          c.Color,
		"log_path":       c.Log.Path,
		"log_level":      c.Log.Level,
		"journal_driver": c.Journal.Driver,
		"journal_path":   c.Journal.Path,
	}
}
