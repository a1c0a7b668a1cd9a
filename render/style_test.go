package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.BorderColor != "#ddd" || s.CellPadding != 8 || s.TextAlign != "center" {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadStyleFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	yaml := "border_color: \"#abc\"\ncell_padding: 4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BorderColor != "#abc" {
		t.Errorf("expected overridden border color, got %q", s.BorderColor)
	}
	if s.CellPadding != 4 {
		t.Errorf("expected overridden padding, got %d", s.CellPadding)
	}
	if s.HeaderBackground != "#f2f2f2" {
		t.Errorf("expected default header background, got %q", s.HeaderBackground)
	}
}

func TestLoadStyleMissingFile(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing style file")
	}
}

func TestLoadStyleBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("cell_padding: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyle(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestStyleCSSRendering(t *testing.T) {
	s := DefaultStyle()
	if !strings.Contains(s.cellCSS(), "border:1px solid #ddd") {
		t.Errorf("cellCSS: %q", s.cellCSS())
	}
	if !strings.Contains(s.headerCSS(), "font-weight:bold") {
		t.Errorf("headerCSS: %q", s.headerCSS())
	}
	if !strings.Contains(s.stripeCSS(), "#f9f9f9") {
		t.Errorf("stripeCSS: %q", s.stripeCSS())
	}
}
