// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// largePrintMinimum is the smallest body font size that qualifies as large
// print. Settings below it are reported, not corrected.
const largePrintMinimum = 18

// accessibleFonts lists typefaces known to read well in large print.
var accessibleFonts = []string{"Arial", "Verdana", "Tahoma", "Calibri", "Helvetica", "Open Sans"}

// RGB is a 24-bit colour used for document text.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as an RRGGBB hex string for OOXML attributes.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// AccessibilitySettings is the large-print typography profile applied to
// every styled document. Loaded once at startup and read-only afterwards.
type AccessibilitySettings struct {
	// BodyFontSize is the main text size in points (18 minimum for large print).
	BodyFontSize int `json:"body_font_size" yaml:"body_font_size"`

	// Heading sizes in points. Must satisfy H1 > H2 > H3.
	Heading1FontSize int `json:"heading1_font_size" yaml:"heading1_font_size"`
	Heading2FontSize int `json:"heading2_font_size" yaml:"heading2_font_size"`
	Heading3FontSize int `json:"heading3_font_size" yaml:"heading3_font_size"`

	// Font is the document typeface (Arial by default).
	Font string `json:"font" yaml:"font"`

	// LineSpacing is the line height multiplier (1.15 minimum recommended).
	LineSpacing float64 `json:"line_spacing" yaml:"line_spacing"`

	// ParagraphSpacing is the space after body paragraphs, in points.
	ParagraphSpacing int `json:"paragraph_spacing" yaml:"paragraph_spacing"`

	// HighContrast switches all derived colours to pure black.
	HighContrast bool `json:"high_contrast" yaml:"high_contrast"`
}

// DefaultAccessibility returns the standard large-print profile.
func DefaultAccessibility() AccessibilitySettings {
	return AccessibilitySettings{
		BodyFontSize:     18,
		Heading1FontSize: 24,
		Heading2FontSize: 22,
		Heading3FontSize: 20,
		Font:             "Arial",
		LineSpacing:      1.15,
		ParagraphSpacing: 6,
	}
}

// TextColor returns the body text colour.
func (s AccessibilitySettings) TextColor() RGB {
	return RGB{0, 0, 0}
}

// HeadingColor returns the heading colour: organisation blue, or black in
// high contrast mode.
func (s AccessibilitySettings) HeadingColor() RGB {
	if s.HighContrast {
		return RGB{0, 0, 0}
	}
	return RGB{0, 51, 102}
}

// AccentColor returns the colour for decorative separators.
func (s AccessibilitySettings) AccentColor() RGB {
	if s.HighContrast {
		return RGB{0, 0, 0}
	}
	return RGB{0, 51, 102}
}

// Validate checks the settings against large-print standards. It returns
// whether the profile meets the standards and a list of findings, both
// confirmations and violations. Violations are reported, never corrected.
func (s AccessibilitySettings) Validate() (bool, []string) {
	var findings []string
	meets := true

	if s.BodyFontSize < largePrintMinimum {
		findings = append(findings, fmt.Sprintf("body font size (%dpt) below large print minimum (%dpt)", s.BodyFontSize, largePrintMinimum))
		meets = false
	} else {
		findings = append(findings, fmt.Sprintf("large print enabled (%dpt body text)", s.BodyFontSize))
	}

	if s.Heading1FontSize < 20 {
		findings = append(findings, fmt.Sprintf("H1 font size (%dpt) should be at least 20pt", s.Heading1FontSize))
		meets = false
	}

	if isAccessibleFont(s.Font) {
		findings = append(findings, fmt.Sprintf("accessible font selected (%s)", s.Font))
	} else {
		findings = append(findings, fmt.Sprintf("font %q may not be optimal for accessibility; recommended: %v", s.Font, accessibleFonts))
	}

	if s.LineSpacing < 1.15 {
		findings = append(findings, fmt.Sprintf("line spacing (%.2f) below recommended minimum (1.15)", s.LineSpacing))
		meets = false
	} else {
		findings = append(findings, fmt.Sprintf("good line spacing (%.2f)", s.LineSpacing))
	}

	if s.Heading1FontSize <= s.Heading2FontSize {
		findings = append(findings, "H1 should be larger than H2 for clear hierarchy")
		meets = false
	}
	if s.Heading2FontSize <= s.Heading3FontSize {
		findings = append(findings, "H2 should be larger than H3 for clear hierarchy")
		meets = false
	}

	if s.HighContrast {
		findings = append(findings, "high contrast mode enabled for maximum visibility")
	}

	return meets, findings
}

func isAccessibleFont(name string) bool {
	for _, f := range accessibleFonts {
		if f == name {
			return true
		}
	}
	return false
}
