// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"strings"
	"testing"

	"github.com/myvision/guide-engine/pkg/types"
)

func TestGuideTitle(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"VoiceOver basics", "Voiceover Basics - Learning Guide"},
		{"JAWS", "Jaws - Learning Guide"},
		{"screen magnification on windows", "Screen Magnification On Windows - Learning Guide"},
	}
	for _, tt := range tests {
		if got := GuideTitle(tt.topic); got != tt.want {
			t.Errorf("GuideTitle(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestBuildSections(t *testing.T) {
	got := Build(types.GenerationRequest{Topic: "VoiceOver rotor"})

	sections := []string{
		"## Learning Objectives",
		"## Prerequisites",
		"## Step-by-Step Instructions",
		"## Practice Activities",
		"## Troubleshooting",
		"## Next Steps",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}

	if !strings.Contains(got, "Create a comprehensive learning guide for: VoiceOver rotor") {
		t.Error("prompt missing topic line")
	}
	if !strings.Contains(got, "# Voiceover Rotor - Learning Guide") {
		t.Error("prompt missing title heading")
	}
	if strings.Contains(got, "IMPORTANT:") {
		t.Error("thinking instructions present without Thinking set")
	}
}

func TestBuildThinkingVariants(t *testing.T) {
	tests := []struct {
		name   string
		detail types.ThinkingDetail
		marker string
	}{
		{"basic", types.DetailBasic, "Think out loud as you create this guide"},
		{"detailed", types.DetailDetailed, "Show your complete thought process"},
		{"expert", types.DetailExpert, "expert-level educational reasoning"},
		{"unknown falls back to basic", types.ThinkingDetail("verbose"), "Think out loud as you create this guide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(types.GenerationRequest{Topic: "NVDA", Thinking: true, Detail: tt.detail})
			if !strings.Contains(got, tt.marker) {
				t.Errorf("prompt missing %q for detail %q", tt.marker, tt.detail)
			}
			// The outline always precedes the thinking instructions.
			if strings.Index(got, "## Next Steps") > strings.Index(got, "IMPORTANT:") {
				t.Error("thinking instructions should follow the outline")
			}
		})
	}
}
