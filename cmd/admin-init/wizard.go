package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-admin/internal/prompt"
	"github.com/goliatone/go-admin/pkg/config"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// askConfig walks through every setting, offering base values as defaults.
func askConfig(ctx context.Context, driver prompt.Driver, base config.Config) (config.Config, error) {
	cfg := base
	var err error

	if cfg.Title, err = driver.Input(ctx, prompt.InputConfig{
		Message: "Panel title",
		Default: base.Title,
	}); err != nil {
		return cfg, err
	}
	if cfg.BaseURL, err = driver.Input(ctx, prompt.InputConfig{
		Message:   "Base URL",
		Default:   base.BaseURL,
		Help:      "Path the panel is mounted under, for example /admin",
		Validator: validateBaseURL,
	}); err != nil {
		return cfg, err
	}
	if cfg.RouteName, err = driver.Input(ctx, prompt.InputConfig{
		Message:   "Route name",
		Default:   base.RouteName,
		Validator: required("route name"),
	}); err != nil {
		return cfg, err
	}

	level, err := driver.Select(ctx, prompt.SelectConfig{
		Message:      "Log level",
		Options:      logLevels,
		DefaultIndex: indexOf(logLevels, base.LogLevel),
	})
	if err != nil {
		return cfg, err
	}
	if level >= 0 {
		cfg.LogLevel = logLevels[level]
	}

	if cfg.Debug, err = driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Show internal errors on error pages?",
		Default: base.Debug,
	}); err != nil {
		return cfg, err
	}
	if cfg.Theme.Name, err = driver.Input(ctx, prompt.InputConfig{
		Message: "Theme (empty for none)",
		Default: base.Theme.Name,
	}); err != nil {
		return cfg, err
	}
	if cfg.Theme.Name != "" {
		if cfg.Theme.Variant, err = driver.Input(ctx, prompt.InputConfig{
			Message: "Theme variant",
			Default: base.Theme.Variant,
		}); err != nil {
			return cfg, err
		}
	} else {
		cfg.Theme.Variant = ""
	}

	cfg.Links = append([]config.Link(nil), base.Links...)
	for {
		more, err := driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Add a navigation link?"})
		if err != nil {
			return cfg, err
		}
		if !more {
			break
		}
		link, err := askLink(ctx, driver)
		if err != nil {
			return cfg, err
		}
		cfg.Links = append(cfg.Links, link)
	}

	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.RouteName = strings.TrimSpace(cfg.RouteName)
	return cfg, cfg.Validate()
}

func askLink(ctx context.Context, driver prompt.Driver) (config.Link, error) {
	var link config.Link
	var err error
	if link.Title, err = driver.Input(ctx, prompt.InputConfig{Message: "Link title", Validator: required("title")}); err != nil {
		return link, err
	}
	if link.URL, err = driver.Input(ctx, prompt.InputConfig{Message: "Link URL", Validator: required("url")}); err != nil {
		return link, err
	}
	if link.Icon, err = driver.Input(ctx, prompt.InputConfig{Message: "Icon classes or SVG (optional)"}); err != nil {
		return link, err
	}
	if link.Blank, err = driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Open in a new tab?"}); err != nil {
		return link, err
	}
	return link, nil
}

func validateBaseURL(value string) error {
	if !strings.HasPrefix(strings.TrimSpace(value), "/") {
		return fmt.Errorf("base URL must start with /")
	}
	return nil
}

func required(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
