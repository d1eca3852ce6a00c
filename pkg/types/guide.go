// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and value types shared across the
// guide generation pipeline. See docs/ARCHITECTURE § Data Model.
package types

import "time"

// ThinkingDetail selects how much reasoning narration the prompt requests.
type ThinkingDetail string

const (
	DetailBasic    ThinkingDetail = "basic"
	DetailDetailed ThinkingDetail = "detailed"
	DetailExpert   ThinkingDetail = "expert"
)

// Format selects the output document format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatDocx     Format = "docx"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "docx"
}

// GenerationRequest describes one guide generation call. Created per
// invocation, immutable, discarded when the request completes.
type GenerationRequest struct {
	// Topic is the assistive technology subject, e.g. "VoiceOver basics".
	Topic string

	// Thinking asks the model to narrate its reasoning before the guide.
	Thinking bool

	// Detail selects the thinking instruction variant. Unknown values fall
	// back to the basic wording.
	Detail ThinkingDetail
}

// GuideMetadata carries the generation metadata attached to each result.
// Field order is the frontmatter emission order.
type GuideMetadata struct {
	Type      string    `json:"type" yaml:"type"`
	Title     string    `json:"title" yaml:"title"`
	Topic     string    `json:"topic" yaml:"topic"`
	Generated time.Time `json:"generated" yaml:"generated"`

	// ClientName personalises a guide for a named client. Empty means no
	// client, and the key is omitted from saved metadata.
	ClientName string `json:"client_name,omitempty" yaml:"client_name,omitempty"`
}

// Pairs returns the metadata as ordered key/value pairs, skipping empty
// optional fields. The order is stable across calls.
func (m GuideMetadata) Pairs() [][2]string {
	pairs := [][2]string{
		{"type", m.Type},
		{"title", m.Title},
		{"topic", m.Topic},
		{"generated", m.Generated.Format(time.RFC3339)},
	}
	if m.ClientName != "" {
		pairs = append(pairs, [2]string{"client_name", m.ClientName})
	}
	return pairs
}

// GenerationResult is the outcome of one successful generation call. It is
// owned by the caller and flows into exactly one document save.
type GenerationResult struct {
	// Content is the guide body in the constrained Markdown subset.
	Content string

	// Title is the formatted guide title, e.g. "Voiceover Basics - Learning Guide".
	Title string

	Metadata GuideMetadata
}
