package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the ribbon configuration document. Every field can be
// overridden from the environment as RIBBON_<SECTION>_<FIELD>, for example
// RIBBON_CWD_MAX_DEPTH.
type Config struct {
	Mode         string         `yaml:"mode,omitempty" validate:"omitempty,oneof=patched compatible flat block"`
	Shell        string         `yaml:"shell,omitempty" validate:"omitempty,oneof=bash zsh bare"`
	Theme        string         `yaml:"theme,omitempty" validate:"omitempty,oneof=default light custom"`
	Colors       map[string]int `yaml:"colors,omitempty" validate:"omitempty,dive,keys,theme_role,endkeys,min=0,max=255"`
	Segments     []string       `yaml:"segments,omitempty" validate:"omitempty,unique,dive,segment_name"`
	Cwd          CwdSettings    `yaml:"cwd,omitempty"`
	Hostname     HostSettings   `yaml:"hostname,omitempty"`
	ProbeTimeout Duration       `yaml:"probe_timeout,omitempty" split_words:"true" validate:"min=0"`
	Parallel     bool           `yaml:"parallel,omitempty"`
	Git          GitSettings    `yaml:"git,omitempty"`
}

// CwdSettings controls the working directory segments.
type CwdSettings struct {
	MaxDepth    int   `yaml:"max_depth,omitempty" split_words:"true" validate:"omitempty,min=1,max=64"`
	Only        bool  `yaml:"only,omitempty"`
	HomeSpecial *bool `yaml:"home_special,omitempty" split_words:"true"`
}

// HostSettings controls the hostname segment.
type HostSettings struct {
	Colorize bool `yaml:"colorize,omitempty"`
}

// GitSettings controls the git probe.
type GitSettings struct {
	SkipStatusPrefixes []string `yaml:"skip_status_prefixes,omitempty" split_words:"true"`
}

// Duration is a time.Duration written as "500ms" or "2s".
type Duration time.Duration

// UnmarshalYAML accepts Go duration strings or bare integers as milliseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.Decode(raw)
}

// MarshalYAML writes the Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Decode implements envconfig.Decoder.
func (d *Duration) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*d = 0
		return nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		ms, convErr := strconv.ParseInt(value, 10, 64)
		if convErr != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		parsed = time.Duration(ms) * time.Millisecond
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Mode:         "patched",
		Shell:        "bash",
		Theme:        "default",
		Cwd:          CwdSettings{MaxDepth: 5},
		ProbeTimeout: Duration(500 * time.Millisecond),
	}
}

// applyDefaults fills unset fields of cfg from Defaults.
func (c *Config) applyDefaults() {
	def := Defaults()
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Shell == "" {
		c.Shell = def.Shell
	}
	if c.Theme == "" {
		c.Theme = def.Theme
		if len(c.Colors) > 0 {
			c.Theme = "custom"
		}
	}
	if c.Cwd.MaxDepth == 0 {
		c.Cwd.MaxDepth = def.Cwd.MaxDepth
	}
	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = def.ProbeTimeout
	}
}
