// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GenerationConfig holds settings for calls to the Anthropic Messages API.
type GenerationConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-20250514").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the length of a generated guide (default 3000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature controls generation variability (default 0.2; low values
	// keep instructional content focused and consistent).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout is the HTTP request timeout (default 120s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StreamingConfig controls real-time delivery of generated content.
type StreamingConfig struct {
	// Enabled selects streaming mode for guide generation.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Fallback retries a failed streaming request once in batch mode.
	// This is the only retry behaviour in the tool.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// ThinkingConfig controls the optional reasoning-narration prompt variant.
type ThinkingConfig struct {
	// Enabled appends a thinking instruction to the prompt so the model
	// narrates its content-design reasoning before the guide body.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Detail selects the verbosity of the thinking instruction.
	Detail ThinkingDetail `json:"detail" yaml:"detail"`
}

// OutputConfig holds file system settings for saved guides.
type OutputConfig struct {
	// Directory is the base output directory. Guides are written to the
	// Learning_Guides subfolder inside it.
	Directory string `json:"directory" yaml:"directory"`
}

// BrandingConfig holds the organisation identity embedded in documents.
type BrandingConfig struct {
	OrganizationName string `json:"organization_name" yaml:"organization_name"`
	ContactEmail     string `json:"contact_email" yaml:"contact_email"`
	Website          string `json:"website" yaml:"website"`

	// LogoPath points at the logo image inserted in the document header.
	// A missing or unreadable file is not an error; the logo is omitted.
	LogoPath string `json:"logo_path" yaml:"logo_path"`
}

// Config groups all settings for the tool. It is built once at startup and
// passed by reference into every component constructor; nothing mutates it
// after that.
type Config struct {
	Generation    GenerationConfig      `json:"generation" yaml:"generation"`
	Streaming     StreamingConfig       `json:"streaming" yaml:"streaming"`
	Thinking      ThinkingConfig        `json:"thinking" yaml:"thinking"`
	Output        OutputConfig          `json:"output" yaml:"output"`
	Branding      BrandingConfig        `json:"branding" yaml:"branding"`
	Accessibility AccessibilitySettings `json:"accessibility" yaml:"accessibility"`
}
