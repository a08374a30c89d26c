// Package config resolves game settings from defaults, an optional YAML file,
// and MADLIB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-madlib/pkg/library"
	"github.com/goliatone/go-madlib/pkg/prompt"
	"github.com/goliatone/go-madlib/pkg/render"
)

// DefaultFile is the config file read when no explicit path is given.
const DefaultFile = "madlib.yaml"

// Driver names accepted by the driver setting.
const (
	DriverAuto   = "auto"
	DriverLine   = "line"
	DriverSurvey = "survey"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDir      = "MADLIB_DIR"
	EnvDriver   = "MADLIB_DRIVER"
	EnvLogLevel = "MADLIB_LOG_LEVEL"
	EnvColor    = "MADLIB_COLOR"
	EnvSeed     = "MADLIB_SEED"
)

// Config holds the resolved settings.
type Config struct {
	TemplatesDir   string `yaml:"templates_dir"`
	Driver         string `yaml:"driver"`
	LogLevel       string `yaml:"log_level"`
	Color          bool   `yaml:"color"`
	SeedSamples    bool   `yaml:"seed_samples"`
	OutputTemplate string `yaml:"output_template"`
	PromptFormat   string `yaml:"prompt_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TemplatesDir:   library.DefaultDir,
		Driver:         DriverAuto,
		LogLevel:       zerolog.WarnLevel.String(),
		Color:          true,
		OutputTemplate: render.DefaultOutputTemplate,
		PromptFormat:   prompt.DefaultPromptFormat,
	}
}

// Load reads path over the defaults. A missing file is tolerated only when
// path is DefaultFile, so explicit paths must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any MADLIB_* variables returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvDir); ok && v != "" {
		c.TemplatesDir = v
	}
	if v, ok := lookup(EnvDriver); ok && v != "" {
		c.Driver = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvColor, err)
		}
		c.Color = b
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.SeedSamples = b
	}
	return nil
}

// Validate normalises and checks the settings.
func (c *Config) Validate() error {
	c.TemplatesDir = strings.TrimSpace(c.TemplatesDir)
	if c.TemplatesDir == "" {
		return errors.New("config: templates_dir is required")
	}

	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	switch c.Driver {
	case "":
		c.Driver = DriverAuto
	case DriverAuto, DriverLine, DriverSurvey:
	default:
		return fmt.Errorf("config: unknown driver %q (want %s, %s or %s)", c.Driver, DriverAuto, DriverLine, DriverSurvey)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel))); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	if c.PromptFormat == "" {
		c.PromptFormat = prompt.DefaultPromptFormat
	}
	if err := checkPromptFormat(c.PromptFormat); err != nil {
		return err
	}
	if c.OutputTemplate == "" {
		c.OutputTemplate = render.DefaultOutputTemplate
	}
	return nil
}

// checkPromptFormat formats a sample label and requires it to appear with no
// fmt error markers such as %!d(string=...) or %!(EXTRA ...).
func checkPromptFormat(format string) error {
	const label = "\x00label\x00"
	out := fmt.Sprintf(format, label)
	if strings.Count(out, label) != 1 || strings.Contains(out, "%!") {
		return fmt.Errorf("config: prompt_format %q must show the label exactly once through a single %%s or %%v verb", format)
	}
	return nil
}
