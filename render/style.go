package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style controls the fixed inline styling applied to table cells and
// rows at serialization time. Zero-valued fields fall back to defaults.
type Style struct {
	// BorderColor is the cell border color (CSS color value).
	BorderColor string `json:"border_color" yaml:"border_color"`

	// CellPadding is the cell padding in pixels.
	CellPadding int `json:"cell_padding" yaml:"cell_padding"`

	// TextAlign is the cell text alignment.
	TextAlign string `json:"text_align" yaml:"text_align"`

	// HeaderBackground is the header cell background color.
	HeaderBackground string `json:"header_background" yaml:"header_background"`

	// StripeBackground is the background color of even data rows.
	StripeBackground string `json:"stripe_background" yaml:"stripe_background"`
}

// DefaultStyle returns the built-in table styling.
func DefaultStyle() Style {
	var s Style
	s.defaults()
	return s
}

func (s *Style) defaults() {
	if s.BorderColor == "" {
		s.BorderColor = "#ddd"
	}
	if s.CellPadding <= 0 {
		s.CellPadding = 8
	}
	if s.TextAlign == "" {
		s.TextAlign = "center"
	}
	if s.HeaderBackground == "" {
		s.HeaderBackground = "#f2f2f2"
	}
	if s.StripeBackground == "" {
		s.StripeBackground = "#f9f9f9"
	}
}

// LoadStyle reads a YAML style file and fills unset fields with defaults.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parse style file: %w", err)
	}
	s.defaults()
	return s, nil
}

// cellCSS returns the inline style shared by all cells.
func (s Style) cellCSS() string {
	return fmt.Sprintf("border:1px solid %s;padding:%dpx;text-align:%s;",
		s.BorderColor, s.CellPadding, s.TextAlign)
}

// headerCSS returns the inline style for header cells.
func (s Style) headerCSS() string {
	return s.cellCSS() + fmt.Sprintf("background-color:%s;font-weight:bold;", s.HeaderBackground)
}

// stripeCSS returns the inline style for even data rows.
func (s Style) stripeCSS() string {
	return fmt.Sprintf("background-color:%s;", s.StripeBackground)
}
