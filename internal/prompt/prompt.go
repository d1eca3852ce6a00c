// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt builds the instruction text sent to the Anthropic Messages
// API for guide generation. Construction is pure: no I/O, no failure modes.
// See docs/ARCHITECTURE § Prompt Builder.
package prompt

import (
	"bytes"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/myvision/guide-engine/pkg/types"
)

// System is the trainer persona sent as the system prompt with every
// generation request.
const System = `You are an expert assistive technology trainer at MyVision Oxfordshire
with 15+ years of experience helping people with visual impairments.

Your expertise includes:
- All major screen readers (VoiceOver, JAWS, NVDA, TalkBack)
- Magnification software and tools
- Voice control systems
- Mobile and desktop accessibility features

Your teaching philosophy:
- Start with empathy and encouragement
- Break complex concepts into manageable steps
- Use clear, jargon-free language
- Provide context for why each step matters
- Include practical tips and troubleshooting

Your goal is to create learning guides that empower independence
and build confidence with assistive technology.`

// guideTmpl is the fixed six-section outline. The section list and order are
// load-bearing: downstream formatting and tests rely on them.
var guideTmpl = template.Must(template.New("guide").Parse(`Create a comprehensive learning guide for: {{.Topic}}

Structure your guide with these sections:

# {{.Title}}

## Learning Objectives
What the learner will accomplish by completing this guide

## Prerequisites
What they should know or have set up before starting

## Step-by-Step Instructions
Detailed, numbered steps with clear explanations
Include specific gesture commands, keyboard shortcuts, or menu paths

## Practice Activities
Hands-on exercises to reinforce the learning

## Troubleshooting
Common issues and how to resolve them

## Next Steps
What to learn next to build on this foundation

Guidelines:
- Use encouraging, supportive language throughout
- Explain WHY steps are important, not just HOW
- Include specific examples and scenarios
- Consider the emotional journey of learning new technology
- Use active voice and clear instructions`))

// Thinking instruction variants, selected by detail level.
const (
	thinkingBasic = `

IMPORTANT: Think out loud as you create this guide.

Show me your reasoning about:
- What makes this topic challenging for learners
- How you'll structure the content
- Why you choose specific examples

Then create the guide based on your analysis.`

	thinkingDetailed = `

IMPORTANT: Show your complete thought process as you work.

Think out loud about:
- How you analyze this topic and its complexity
- What you know about the target audience
- Your pedagogical decisions and why you make them
- How you structure content for maximum learning
- What examples and activities would be most effective

Format your thinking clearly, then create the guide.`

	thinkingExpert = `

IMPORTANT: Demonstrate expert-level educational reasoning.

Show your complete analysis including:
- Topic complexity assessment and prerequisite mapping
- Learner persona analysis and accessibility considerations
- Cognitive load management and chunking strategies
- Multi-modal learning approach selection
- Common failure points and mitigation strategies
- Assessment and practice activity design rationale

Provide deep insight into your educational decision-making process.`
)

// titleCaser title-cases topic words for guide titles, matching the casing
// used in filenames and metadata.
var titleCaser = cases.Title(language.English)

// GuideTitle formats the guide title for a topic, e.g.
// "VoiceOver basics" -> "Voiceover Basics - Learning Guide".
func GuideTitle(topic string) string {
	return titleCaser.String(topic) + " - Learning Guide"
}

// Build renders the full user prompt for a generation request: the
// six-section outline with the topic interpolated, plus the thinking
// instruction block when requested. Unknown detail levels fall back to the
// basic wording.
func Build(req types.GenerationRequest) string {
	var buf bytes.Buffer
	guideTmpl.Execute(&buf, struct {
		Topic string
		Title string
	}{Topic: req.Topic, Title: GuideTitle(req.Topic)})

	if req.Thinking {
		buf.WriteString(thinkingInstruction(req.Detail))
	}
	return buf.String()
}

// thinkingInstruction selects the instruction block for a detail level.
func thinkingInstruction(detail types.ThinkingDetail) string {
	switch detail {
	case types.DetailDetailed:
		return thinkingDetailed
	case types.DetailExpert:
		return thinkingExpert
	default:
		return thinkingBasic
	}
}
