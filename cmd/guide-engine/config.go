// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/myvision/guide-engine/pkg/types"
)

// setDefaults registers the configuration defaults. Config file values and
// MYVISION_* environment variables override them.
func setDefaults() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("generation.model", "claude-sonnet-4-20250514")
	viper.SetDefault("generation.max_tokens", 3000)
	viper.SetDefault("generation.temperature", 0.2)
	viper.SetDefault("generation.timeout", "120s")

	viper.SetDefault("streaming.enabled", true)
	viper.SetDefault("streaming.fallback", true)

	viper.SetDefault("thinking.enabled", true)
	viper.SetDefault("thinking.detail", "detailed")

	viper.SetDefault("output.directory", defaultOutputDir())

	viper.SetDefault("branding.organization_name", "MyVision Oxfordshire")
	viper.SetDefault("branding.contact_email", "info@myvision.org.uk")
	viper.SetDefault("branding.website", "www.myvision.org.uk")
	viper.SetDefault("branding.logo_path", filepath.Join("assets", "myvision_logo.png"))

	a := types.DefaultAccessibility()
	viper.SetDefault("accessibility.body_font_size", a.BodyFontSize)
	viper.SetDefault("accessibility.heading1_font_size", a.Heading1FontSize)
	viper.SetDefault("accessibility.heading2_font_size", a.Heading2FontSize)
	viper.SetDefault("accessibility.heading3_font_size", a.Heading3FontSize)
	viper.SetDefault("accessibility.font", a.Font)
	viper.SetDefault("accessibility.line_spacing", a.LineSpacing)
	viper.SetDefault("accessibility.paragraph_spacing", a.ParagraphSpacing)
	viper.SetDefault("accessibility.high_contrast", false)
}

// defaultOutputDir is the out-of-the-box guide location: a MyVision_Guides
// folder on the user's desktop.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "MyVision_Guides"
	}
	return filepath.Join(home, "Desktop", "MyVision_Guides")
}

// buildConfig assembles the full configuration from viper and the loaded
// secrets. The API key comes from ANTHROPIC_API_KEY, falling back to the
// .secrets/anthropic-api-key file.
func buildConfig() *types.Config {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		apiKey = loadedSecrets["anthropic-api-key"]
	}

	timeout, err := time.ParseDuration(viper.GetString("generation.timeout"))
	if err != nil {
		timeout = 120 * time.Second
	}

	return &types.Config{
		Generation: types.GenerationConfig{
			Model:       viper.GetString("generation.model"),
			APIKey:      apiKey,
			MaxTokens:   viper.GetInt("generation.max_tokens"),
			Temperature: viper.GetFloat64("generation.temperature"),
			Timeout:     timeout,
		},
		Streaming: types.StreamingConfig{
			Enabled:  viper.GetBool("streaming.enabled"),
			Fallback: viper.GetBool("streaming.fallback"),
		},
		Thinking: types.ThinkingConfig{
			Enabled: viper.GetBool("thinking.enabled"),
			Detail:  types.ThinkingDetail(viper.GetString("thinking.detail")),
		},
		Output: types.OutputConfig{
			Directory: viper.GetString("output.directory"),
		},
		Branding: types.BrandingConfig{
			OrganizationName: viper.GetString("branding.organization_name"),
			ContactEmail:     viper.GetString("branding.contact_email"),
			Website:          viper.GetString("branding.website"),
			LogoPath:         viper.GetString("branding.logo_path"),
		},
		Accessibility: types.AccessibilitySettings{
			BodyFontSize:     viper.GetInt("accessibility.body_font_size"),
			Heading1FontSize: viper.GetInt("accessibility.heading1_font_size"),
			Heading2FontSize: viper.GetInt("accessibility.heading2_font_size"),
			Heading3FontSize: viper.GetInt("accessibility.heading3_font_size"),
			Font:             viper.GetString("accessibility.font"),
			LineSpacing:      viper.GetFloat64("accessibility.line_spacing"),
			ParagraphSpacing: viper.GetInt("accessibility.paragraph_spacing"),
			HighContrast:     viper.GetBool("accessibility.high_contrast"),
		},
	}
}
