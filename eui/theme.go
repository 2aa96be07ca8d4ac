package eui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"colorpicker/logger"
)

//go:embed themes/*.json
var embeddedThemes embed.FS

// ThemeDir is checked before the embedded themes so palettes can be
// overridden without rebuilding.
var ThemeDir = "themes"

// Theme holds the colors used to paint a picker.
type Theme struct {
	Background  Color
	Text        Color
	Label       Color
	LabelBG     Color
	FieldBG     Color
	FieldBorder Color
	FieldFocus  Color
	FieldError  Color
	Handle      Color
	TooltipBG   Color
	TooltipText Color
}

var defaultTheme = Theme{
	Background:  NewColor(255, 255, 255),
	Text:        NewColor(34, 34, 34),
	Label:       NewColor(34, 34, 34),
	LabelBG:     NewColor(245, 245, 245),
	FieldBG:     NewColor(255, 255, 255),
	FieldBorder: NewColor(221, 221, 221),
	FieldFocus:  NewColor(60, 173, 232),
	FieldError:  NewColor(214, 69, 65),
	Handle:      NewColor(255, 255, 255),
	TooltipBG:   NewColor(34, 34, 34),
	TooltipText: NewColor(255, 255, 255),
}

var (
	currentTheme     = defaultTheme
	currentThemeName = "Light"
	namedColors      = map[string]Color{}
)

type themeFile struct {
	Comment string            `json:"Comment"`
	Colors  map[string]string `json:"Colors"`
}

// resolveColor recursively resolves string references to colors after the
// theme JSON has been parsed. Color strings may reference other named colors
// from the same file.
func resolveColor(s string, colors map[string]string, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if val, ok := colors[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("color reference cycle for %s", key)
		}
		seen[key] = true
		c, err := resolveColor(val, colors, seen)
		if err != nil {
			return Color{}, err
		}
		namedColors[key] = c
		return c, nil
	}
	var c Color
	if err := c.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return Color{}, err
	}
	return c, nil
}

func readTheme(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(ThemeDir, name+".json"))
	if err == nil {
		return data, nil
	}
	return embeddedThemes.ReadFile(path.Join("themes", name+".json"))
}

// ParseTheme builds a theme from JSON palette data. Fields missing from the
// file keep their default colors.
func ParseTheme(data []byte) (Theme, error) {
	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Theme{}, err
	}

	namedColors = map[string]Color{}
	colors := make(map[string]string, len(tf.Colors))
	for n, v := range tf.Colors {
		colors[strings.ToLower(n)] = v
	}
	for n, v := range colors {
		c, err := resolveColor(v, colors, map[string]bool{n: true})
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", n, err)
		}
		namedColors[n] = c
	}

	th := defaultTheme
	if err := json.Unmarshal(data, &th); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// LoadTheme reads a palette from ThemeDir or the embedded themes and makes
// it current.
func LoadTheme(name string) error {
	data, err := readTheme(name)
	if err != nil {
		return fmt.Errorf("theme %s: %w", name, err)
	}
	th, err := ParseTheme(data)
	if err != nil {
		return fmt.Errorf("theme %s: %w", name, err)
	}
	currentTheme = th
	currentThemeName = name
	logger.Log.Debug("theme loaded", zap.String("name", name))
	return nil
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme { return currentTheme }

// CurrentThemeName returns the active theme name.
func CurrentThemeName() string { return currentThemeName }

// ListThemes returns the available theme names.
func ListThemes() ([]string, error) {
	seen := map[string]bool{}
	entries, err := fs.ReadDir(embeddedThemes, "themes")
	if err != nil {
		return nil, err
	}
	if local, err := os.ReadDir(ThemeDir); err == nil {
		entries = append(entries, local...)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// SaveTheme writes the current theme to ThemeDir under the given name.
func SaveTheme(name string) error {
	if name == "" {
		return fmt.Errorf("theme name required")
	}
	data, err := json.MarshalIndent(currentTheme, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(ThemeDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(ThemeDir, name+".json"), data, 0644)
}
