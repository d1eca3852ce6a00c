// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myvision/guide-engine/internal/document"
	"github.com/myvision/guide-engine/internal/library"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently generated guides",
	Long: `List shows guides in the output directory, newest first. Guides recorded
in the history database are shown with their topic; files written by other
means are listed from the directory scan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		guidesDir := document.NewWriter(cfg).GuidesDir()
		limit := mustInt(cmd, "limit")

		if listFromHistory(cmd, guidesDir, limit) {
			return nil
		}

		files, err := library.ListDir(guidesDir, limit)
		if err != nil {
			return fmt.Errorf("listing guides: %w", err)
		}
		if len(files) == 0 {
			fmt.Println("No guides found in", guidesDir)
			return nil
		}
		for _, f := range files {
			fmt.Printf("%s  %7d bytes  %s\n", f.Modified.Format("2006-01-02 15:04"), f.Size, f.Name)
		}
		return nil
	},
}

// listFromHistory prints entries from the history database. Reports whether
// it handled the listing; a missing or empty history falls back to the
// directory scan.
func listFromHistory(cmd *cobra.Command, guidesDir string, limit int) bool {
	store, err := library.OpenStore(guidesDir)
	if err != nil {
		return false
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil || len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		fmt.Printf("%s  %-10s  %s\n", e.Created.Format("2006-01-02 15:04"), e.Format, e.Title)
	}
	return true
}

func mustInt(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: flag %s: %v\n", name, err)
	}
	return v
}

func init() {
	listCmd.Flags().Int("limit", 20, "maximum number of guides to list")

	rootCmd.AddCommand(listCmd)
}
