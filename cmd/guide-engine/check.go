// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/myvision/guide-engine/internal/document"
	"github.com/myvision/guide-engine/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the accessibility settings against large print standards",
	Long: `Check validates the configured typography against large print standards
(18pt minimum body text, clear heading hierarchy, readable spacing) and
reports each finding. With --write it also saves a sample document using
the current settings, without calling the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		meets, findings := cfg.Accessibility.Validate()
		for _, f := range findings {
			fmt.Println("-", f)
		}
		if meets {
			fmt.Println("\nAccessibility settings meet large print standards.")
		} else {
			fmt.Println("\nAccessibility settings do NOT meet large print standards.")
		}

		if !mustBool(cmd, "write") {
			return nil
		}

		format := types.Format(mustString(cmd, "format"))
		if format != types.FormatMarkdown && format != types.FormatDocx {
			return fmt.Errorf("unknown format %q (markdown or docx)", format)
		}
		path, err := writeSample(cfg, format)
		if err != nil {
			return err
		}
		fmt.Println("Sample document saved:", path)
		return nil
	},
}

// writeSample saves a small fixed document so the formatting can be
// inspected with real assistive technology.
func writeSample(cfg *types.Config, format types.Format) (string, error) {
	res := &types.GenerationResult{
		Title: "Accessibility Test - Learning Guide",
		Content: `# Accessibility Test - Learning Guide

## Heading Level Two

### Heading Level Three

This paragraph uses the configured body size, font, and line spacing.
It includes **bold emphasis** inside a sentence.

- First bullet item
- Second bullet item

1. First numbered step
2. Second numbered step`,
		Metadata: types.GuideMetadata{
			Type:      "Accessibility Test Guide",
			Title:     "Accessibility Test - Learning Guide",
			Topic:     "formatting sample",
			Generated: time.Now(),
		},
	}
	return document.NewWriter(cfg).SaveGuide(res, format, "accessibility_test")
}

func init() {
	checkCmd.Flags().Bool("write", false, "save a sample document with the current settings")
	checkCmd.Flags().String("format", "docx", "sample document format: markdown or docx")

	rootCmd.AddCommand(checkCmd)
}
