// Package config loads admin panel settings from a YAML file and ADMIN_
// prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, for example ADMIN_BASE_URL.
const EnvPrefix = "ADMIN"

// DefaultFileName is searched for in the working directory when Load gets no
// explicit path.
const DefaultFileName = "admin"

// Config holds the settings of one admin panel.
type Config struct {
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	RouteName    string `mapstructure:"route_name" yaml:"route_name"`
	Title        string `mapstructure:"title" yaml:"title"`
	Debug        bool   `mapstructure:"debug" yaml:"debug"`
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir,omitempty"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	Theme        Theme  `mapstructure:"theme" yaml:"theme,omitempty"`
	Links        []Link `mapstructure:"links" yaml:"links,omitempty"`
}

// Theme names the go-theme selection applied to templates.
type Theme struct {
	Name    string `mapstructure:"name" yaml:"name,omitempty"`
	Variant string `mapstructure:"variant" yaml:"variant,omitempty"`
}

// Link is a navigation link declared in configuration.
type Link struct {
	Title string `mapstructure:"title" yaml:"title"`
	URL   string `mapstructure:"url" yaml:"url"`
	Icon  string `mapstructure:"icon" yaml:"icon,omitempty"`
	Blank bool   `mapstructure:"blank" yaml:"blank,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		BaseURL:   "/admin",
		RouteName: "admin",
		Title:     "Admin Panel",
		LogLevel:  "info",
	}
}

// Load reads configuration from path, or from ./admin.{yaml,yml} when path is
// empty, and applies environment overrides. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describePath(path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("route_name", def.RouteName)
	v.SetDefault("title", def.Title)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("templates_dir", "")
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
}

func describePath(path string) string {
	if path == "" {
		return DefaultFileName + ".yaml"
	}
	return path
}

// Validate checks the settings Load cannot default.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "/") {
		return fmt.Errorf("config: base_url %q must start with /", c.BaseURL)
	}
	if strings.TrimSpace(c.RouteName) == "" {
		return errors.New("config: route_name is required")
	}
	for i, link := range c.Links {
		if strings.TrimSpace(link.Title) == "" || strings.TrimSpace(link.URL) == "" {
			return fmt.Errorf("config: links[%d] needs a title and url", i)
		}
	}
	return nil
}

// Write stores cfg as YAML at path, creating parent directories.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
