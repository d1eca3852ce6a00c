// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document writes generated guides to disk as accessibility-formatted
// Markdown or Word files. See docs/ARCHITECTURE § Document Writer.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/myvision/guide-engine/pkg/types"
)

// guidesSubdir is the fixed subfolder for saved guides under the output
// directory.
const guidesSubdir = "Learning_Guides"

// Writer saves generation results in the configured output location.
type Writer struct {
	cfg *types.Config
}

// NewWriter returns a writer for the given configuration.
func NewWriter(cfg *types.Config) *Writer {
	return &Writer{cfg: cfg}
}

// GuidesDir returns the directory guides are written to.
func (w *Writer) GuidesDir() string {
	return filepath.Join(w.cfg.Output.Directory, guidesSubdir)
}

// SaveGuide writes the result in the requested format and returns the full
// path of the new file. The guides directory is created on demand. Writes are
// atomic: an interrupted save leaves no partial file behind.
func (w *Writer) SaveGuide(res *types.GenerationResult, format types.Format, guideType string) (string, error) {
	var data []byte
	var err error
	switch format {
	case types.FormatDocx:
		data, err = w.renderDocx(res)
	default:
		data, err = renderMarkdown(res)
	}
	if err != nil {
		return "", err
	}

	generated := res.Metadata.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	path := filepath.Join(w.GuidesDir(), Filename(res.Metadata.Topic, guideType, format, generated))
	if err := writeAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes data to path via a temp file in the same directory and
// a rename, creating parent directories as needed.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating guides directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".guide-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", filepath.Base(path), err)
	}
	return nil
}
