package eui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseThemeResolvesReferences(t *testing.T) {
	data := []byte(`{
		"Colors": {"base": "#102030", "alias": "Base"},
		"Text": "alias",
		"Handle": "#ABCDEF"
	}`)
	th, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Text != NewColor(0x10, 0x20, 0x30) {
		t.Fatalf("text %+v", th.Text)
	}
	if th.Handle != NewColor(0xAB, 0xCD, 0xEF) {
		t.Fatalf("handle %+v", th.Handle)
	}
	if th.Background != defaultTheme.Background {
		t.Fatalf("missing field lost its default: %+v", th.Background)
	}
}

func TestParseThemeCycle(t *testing.T) {
	data := []byte(`{"Colors": {"a": "b", "b": "a"}}`)
	if _, err := ParseTheme(data); err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestParseThemeBadColor(t *testing.T) {
	if _, err := ParseTheme([]byte(`{"Text": "#12"}`)); err == nil {
		t.Fatalf("expected error for short color")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names, err := ListThemes()
	if err != nil {
		t.Fatalf("ListThemes: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("themes %v", names)
	}
	for _, n := range names {
		if err := LoadTheme(n); err != nil {
			t.Fatalf("LoadTheme(%s): %v", n, err)
		}
	}
	if err := LoadTheme("Light"); err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if CurrentThemeName() != "Light" || CurrentTheme().Background != NewColor(255, 255, 255) {
		t.Fatalf("current theme %s %+v", CurrentThemeName(), CurrentTheme().Background)
	}
}

func TestSaveThemeRoundTrip(t *testing.T) {
	old := ThemeDir
	ThemeDir = t.TempDir()
	defer func() { ThemeDir = old }()

	if err := LoadTheme("Dark"); err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	want := CurrentTheme()
	if err := SaveTheme("Mine"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ThemeDir, "Mine.json")); err != nil {
		t.Fatalf("saved file: %v", err)
	}
	if err := LoadTheme("Mine"); err != nil {
		t.Fatalf("LoadTheme(Mine): %v", err)
	}
	if CurrentTheme() != want {
		t.Fatalf("round trip %+v want %+v", CurrentTheme(), want)
	}
	if err := SaveTheme(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(NewColor(1, 2, 255))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"#0102FF"` {
		t.Fatalf("marshal %s", data)
	}
	var c Color
	if err := json.Unmarshal([]byte(`"0102ff"`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c != NewColor(1, 2, 255) {
		t.Fatalf("unmarshal %+v", c)
	}
}
