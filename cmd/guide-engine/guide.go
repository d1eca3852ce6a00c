// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/myvision/guide-engine/internal/document"
	"github.com/myvision/guide-engine/internal/guidegen"
	"github.com/myvision/guide-engine/internal/library"
	"github.com/myvision/guide-engine/pkg/types"
)

// previewLen caps the content preview printed after a batch generation.
const previewLen = 200

var guideCmd = &cobra.Command{
	Use:   "guide <topic>...",
	Short: "Generate a learning guide for an assistive technology topic",
	Long: `Guide generates a complete learning guide for the given topic using the
Anthropic Messages API and saves it to the configured output directory.

The guide follows a fixed structure: learning objectives, prerequisites,
step-by-step instructions, practice activities, troubleshooting, and next
steps. Output is accessibility-formatted Markdown or Word.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		topic := strings.Join(args, " ")

		format := types.Format(mustString(cmd, "format"))
		if format != types.FormatMarkdown && format != types.FormatDocx {
			return fmt.Errorf("unknown format %q (markdown or docx)", format)
		}

		streaming := cfg.Streaming.Enabled
		if cmd.Flags().Changed("stream") {
			streaming = mustBool(cmd, "stream")
		}
		thinking := cfg.Thinking.Enabled
		if cmd.Flags().Changed("thinking") {
			thinking = mustBool(cmd, "thinking")
		}
		detail := cfg.Thinking.Detail
		if cmd.Flags().Changed("detail") {
			detail = types.ThinkingDetail(mustString(cmd, "detail"))
		}

		client, err := guidegen.NewClient(cfg.Generation)
		if err != nil {
			return err
		}
		req := types.GenerationRequest{Topic: topic, Thinking: thinking, Detail: detail}

		fmt.Fprintf(os.Stderr, "Generating guide: %s\n", topic)

		var res *types.GenerationResult
		if streaming {
			res, err = streamGuide(cmd.Context(), cfg, client, req)
		} else {
			res, err = client.Generate(cmd.Context(), req)
		}
		if err != nil {
			return err
		}

		writer := document.NewWriter(cfg)
		path, err := writer.SaveGuide(res, format, "learning")
		if err != nil {
			return err
		}
		recordGuide(cmd.Context(), writer.GuidesDir(), res, format, path)

		fmt.Printf("Guide saved: %s\n", path)
		if !streaming {
			fmt.Printf("\n%s\n", preview(res.Content))
		}
		return nil
	},
}

// streamGuide runs a streaming generation, printing fragments as they
// arrive. When streaming fails and fallback is enabled, it retries once in
// batch mode; a cancelled context is never retried.
func streamGuide(ctx context.Context, cfg *types.Config, client *guidegen.Client, req types.GenerationRequest) (*types.GenerationResult, error) {
	res, err := client.Collect(ctx, req, func(fragment string) {
		fmt.Print(fragment)
	})
	if err == nil {
		fmt.Println()
		return res, nil
	}
	if ctx.Err() != nil || !cfg.Streaming.Fallback {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "\nStreaming failed (%v), retrying in batch mode\n", err)
	return client.Generate(ctx, req)
}

// recordGuide adds the saved guide to the history database. History is an
// index, not the source of truth: failures warn and the command still
// succeeds.
func recordGuide(ctx context.Context, guidesDir string, res *types.GenerationResult, format types.Format, path string) {
	store, err := library.OpenStore(guidesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open guide history: %v\n", err)
		return
	}
	defer store.Close()

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	err = store.Record(ctx, library.Entry{
		Title:     res.Title,
		Topic:     res.Metadata.Topic,
		GuideType: "learning",
		Format:    string(format),
		Path:      path,
		Size:      size,
		Created:   time.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record guide history: %v\n", err)
	}
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}
	return string(runes[:previewLen]) + "..."
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	guideCmd.Flags().String("format", "markdown", "output format: markdown or docx")
	guideCmd.Flags().Bool("stream", true, "stream content as it is generated")
	guideCmd.Flags().Bool("thinking", true, "ask the model to narrate its reasoning")
	guideCmd.Flags().String("detail", "detailed", "thinking detail level: basic, detailed, or expert")

	rootCmd.AddCommand(guideCmd)
}
