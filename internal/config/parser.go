package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. RIBBON_MODE.
const EnvPrefix = "ribbon"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $XDG_CONFIG_HOME/ribbon/config.yaml, falling back to
// ~/.config/ribbon/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ribbon", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ribbon", "config.yaml"), nil
}

// ParseConfig reads and decodes the file at path without validating it.
// Read failures are ParseErrors that unwrap to the underlying fs error.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ribbonerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ribbonerrors.NewParseError(path, extractLine(err), err)
	}
	return &cfg, nil
}

// Load reads the configuration at path (DefaultPath when empty), then
// applies RIBBON_* environment overrides and validates the result. A
// missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			path = ""
		}
	}

	cfg := &Config{}
	if path != "" {
		parsed, err := ParseConfig(path)
		switch {
		case err == nil:
			cfg = parsed
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays RIBBON_* environment variables onto cfg. Unset
// variables leave the existing values alone.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return ribbonerrors.NewValidationError("environment", err.Error(), err)
	}
	return nil
}

// Exists reports whether a configuration file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
