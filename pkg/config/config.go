package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/soypete/taskroster/pkg/database"
)

// FileNames are the config file names LoadDefault looks for, in order
var FileNames = []string{".taskroster.json", ".taskroster.yaml", ".taskroster.yml"}

//go:embed schema.json
var schemaJSON []byte

// Config represents the taskroster configuration
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Seed     SeedConfig     `json:"seed" yaml:"seed"`
	UI       UIConfig       `json:"ui" yaml:"ui"`
	Debug    DebugConfig    `json:"debug" yaml:"debug"`

	// Source is the file the config was read from, empty for defaults
	Source string `json:"-" yaml:"-"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// SeedConfig controls the sample rows written into an empty database
type SeedConfig struct {
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// UIConfig contains terminal settings
type UIConfig struct {
	HistoryFile string `json:"history_file" yaml:"history_file"`
	// Plain forces line-buffered input even on a terminal
	Plain bool `json:"plain" yaml:"plain"`
}

// DebugConfig contains debug settings
type DebugConfig struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// envOverrides are read from the environment; nil means unset
type envOverrides struct {
	DBPath      *string `env:"TASKROSTER_DB_PATH"`
	NoSeed      *bool   `env:"TASKROSTER_NO_SEED"`
	Verbose     *bool   `env:"TASKROSTER_VERBOSE"`
	HistoryFile *string `env:"TASKROSTER_HISTORY_FILE"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	var c Config
	c.setDefaults()
	return &c
}

// Load loads configuration from a JSON or YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
		if err := validateDocument(gojsonschema.NewGoLoader(doc)); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".json", "":
		if err := validateDocument(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file type: %s", ext)
	}

	config.Source = path

	// Set defaults
	config.setDefaults()

	// Validate
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDefault loads the first config file found in the current directory
// or the home directory. A missing file is not an error; defaults are
// returned instead.
func LoadDefault() (*Config, error) {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}
	}

	return Default(), nil
}

// ApplyEnv overrides fields from TASKROSTER_* environment variables
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{})
}

func (c *Config) applyEnv(opts env.Options) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if o.DBPath != nil {
		c.Database.Path = *o.DBPath
	}
	if o.NoSeed != nil {
		c.Seed.Disabled = *o.NoSeed
	}
	if o.Verbose != nil {
		c.Debug.Verbose = *o.Verbose
	}
	if o.HistoryFile != nil {
		c.UI.HistoryFile = *o.HistoryFile
	}

	return c.Validate()
}

// setDefaults sets default values for configuration
func (c *Config) setDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = database.DefaultPath
	}
	if c.UI.HistoryFile == "" {
		c.UI.HistoryFile = defaultHistoryFile()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database path is required")
	}
	return nil
}

// validateDocument checks a raw config document against the embedded schema
func validateDocument(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), doc)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			errs[i] = e.String()
		}
		return fmt.Errorf("invalid config file: %s", strings.Join(errs, "; "))
	}
	return nil
}

// defaultHistoryFile returns the path of the readline history file
func defaultHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "taskroster_history")
	}
	return filepath.Join(homeDir, ".taskroster_history")
}
