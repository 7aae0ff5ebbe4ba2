package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type windowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type appConfig struct {
	Window    windowConfig `toml:"window"`
	ThemePath string       `toml:"theme"`
	FontPath  string       `toml:"font"`
	IconDir   string       `toml:"icon_dir"`
	NotePath  string       `toml:"note"`
	LogLevel  string       `toml:"log_level"`
}

func defaultConfig() appConfig {
	return appConfig{
		Window:   windowConfig{Title: "Padgrove", Width: 1024, Height: 768, VSync: true},
		IconDir:  "assets/icons",
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. A missing file is not an
// error; a malformed one is.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
