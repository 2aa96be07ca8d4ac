package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is persisted to settings.yaml in the base directory.
type Settings struct {
	Scale   float32         `yaml:"scale"`
	VSync   bool            `yaml:"vsync"`
	Theme   string          `yaml:"theme"`
	Color   string          `yaml:"color"`
	Logging LoggingSettings `yaml:"logging"`
}

// LoggingSettings configures the process logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func defaultSettings() *Settings {
	return &Settings{
		Scale: 2,
		VSync: true,
		Color: "FFFFFF",
		Logging: LoggingSettings{
			Level: "info",
			File:  "colorpicker.log",
		},
	}
}

// loadSettings reads path over the defaults. A missing file is not an error.
func loadSettings(path string) (*Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Scale <= 0 {
		s.Scale = defaultSettings().Scale
	}
	return s, nil
}

func saveSettings(s *Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

type cliFlags struct {
	debug    bool
	theme    string
	scale    float64
	settings string
	color    string
}

func parseFlags(args []string, out io.Writer) (cliFlags, error) {
	var f cliFlags
	set := flag.NewFlagSet("colorpicker", flag.ContinueOnError)
	set.SetOutput(out)
	set.BoolVar(&f.debug, "debug", false, "verbose/debug logging")
	set.StringVar(&f.theme, "theme", "", "theme name (default follows the system dark mode)")
	set.Float64Var(&f.scale, "scale", 0, "UI scale factor")
	set.StringVar(&f.settings, "settings", "", "path to settings.yaml")
	set.StringVar(&f.color, "color", "", "initial color as six hex digits")
	err := set.Parse(args)
	return f, err
}

// apply overrides s with any flags that were given.
func (f cliFlags) apply(s *Settings) {
	if f.debug {
		s.Logging.Level = "debug"
	}
	if f.theme != "" {
		s.Theme = f.theme
	}
	if f.scale > 0 {
		s.Scale = float32(f.scale)
	}
	if f.color != "" {
		s.Color = f.color
	}
}
