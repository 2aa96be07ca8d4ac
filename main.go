package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
	"github.com/sqweek/dialog"
	dark "github.com/thiagokokada/dark-mode-go"
	"go.uber.org/zap"

	"colorpicker/eui"
	"colorpicker/logger"
)

var baseDir string

func main() {
	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		if baseDir, err = os.Getwd(); err != nil {
			fmt.Printf("get working directory: %v\n", err)
			os.Exit(1)
		}
	}

	path := flags.settings
	if path == "" {
		path = filepath.Join(baseDir, "settings.yaml")
	}
	s, err := loadSettings(path)
	if err != nil {
		fatal("load settings", err)
	}
	flags.apply(s)

	if err := setupLogging(s.Logging); err != nil {
		fmt.Printf("logging: %v\n", err)
	}
	defer logger.Sync()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	theme := pickTheme(s.Theme, dark.IsDarkMode)
	if err := eui.LoadTheme(theme); err != nil {
		logError("load theme: %v", err)
	}

	g := newGame(s)
	w, h := g.widget.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetVsyncEnabled(s.VSync)
	ebiten.SetWindowClosingHandled(true)

	start := time.Now()
	logger.Log.Info("picker started",
		zap.String("theme", theme),
		zap.String("color", s.Color),
		zap.Stringer("id", g.widget.State().ID()))
	if err := ebiten.RunGame(g); err != nil {
		fatal("run", err)
	}
	g.widget.Dispose()

	if g.dirty {
		if err := saveSettings(s, path); err != nil {
			logError("save settings: %v", err)
		}
	}
	logger.Log.Info("picker closed",
		zap.String("color", s.Color),
		zap.String("uptime", durafmt.Parse(time.Since(start)).LimitFirstN(2).String()))
}

// pickTheme returns name, or Dark/Light following the system appearance
// when name is empty.
func pickTheme(name string, isDark func() (bool, error)) string {
	if name != "" {
		return name
	}
	d, err := isDark()
	if err != nil {
		logDebug("dark mode detection: %v", err)
		return "Light"
	}
	if d {
		return "Dark"
	}
	return "Light"
}

func fatal(what string, err error) {
	logError("%s: %v", what, err)
	logger.Sync()
	dialog.Message("%s: %v", what, err).Title("Color Picker").Error()
	os.Exit(1)
}
