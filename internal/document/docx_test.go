// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/myvision/guide-engine/pkg/types"
)

func docPart(t *testing.T, path, part string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != part {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening part %s: %v", part, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading part %s: %v", part, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in %s", part, path)
	return ""
}

func TestSaveGuideDocxWithoutLogo(t *testing.T) {
	cfg := testConfig(t)
	cfg.Branding.LogoPath = filepath.Join(t.TempDir(), "missing_logo.png")

	w := NewWriter(cfg)
	res := sampleResult("VoiceOver basics")
	res.Content = "# Voiceover Basics - Learning Guide\n\n" +
		"## Learning Objectives\n\n" +
		"- Use the **rotor** confidently\n" +
		"1. Open Settings\n"

	path, err := w.SaveGuide(res, types.FormatDocx, "learning")
	if err != nil {
		t.Fatalf("SaveGuide: %v", err)
	}
	if !strings.HasSuffix(path, ".docx") {
		t.Errorf("path = %q, want .docx", path)
	}

	doc := docPart(t, path, "word/document.xml")
	if strings.Contains(doc, "<w:drawing>") {
		t.Error("document should have no image when logo file is missing")
	}
	for _, want := range []string{
		"Voiceover Basics - Learning Guide",
		"MyVision Oxfordshire",
		"Email: info@myvision.org.uk",
		"formatted for accessibility with large print (18pt minimum font size)",
		`<w:pStyle w:val="Heading2"/>`,
		`<w:pStyle w:val="ListBullet"/>`,
		`<w:pStyle w:val="ListNumber"/>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// Bold span from ** markers.
	if !strings.Contains(doc, "rotor") {
		t.Error("list text missing")
	}

	styles := docPart(t, path, "word/styles.xml")
	if !strings.Contains(styles, `w:ascii="Arial"`) {
		t.Error("styles.xml missing default font")
	}
}

func TestSaveGuideDocxWithLogo(t *testing.T) {
	logoPath := filepath.Join(t.TempDir(), "logo.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding logo: %v", err)
	}
	if err := os.WriteFile(logoPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing logo: %v", err)
	}

	cfg := testConfig(t)
	cfg.Branding.LogoPath = logoPath

	w := NewWriter(cfg)
	path, err := w.SaveGuide(sampleResult("VoiceOver basics"), types.FormatDocx, "learning")
	if err != nil {
		t.Fatalf("SaveGuide: %v", err)
	}

	doc := docPart(t, path, "word/document.xml")
	if !strings.Contains(doc, "<w:drawing>") {
		t.Error("document missing logo drawing")
	}
	// 2 inches wide, 4:2 aspect ratio gives 1 inch tall.
	if !strings.Contains(doc, `<wp:extent cx="1828800" cy="914400"/>`) {
		t.Error("logo extent not scaled from image aspect ratio")
	}

	media := docPart(t, path, "word/media/image1.png")
	if media != buf.String() {
		t.Error("logo bytes not embedded unchanged")
	}
}

func TestSaveGuideDocxHighContrast(t *testing.T) {
	cfg := testConfig(t)
	cfg.Accessibility.HighContrast = true

	w := NewWriter(cfg)
	path, err := w.SaveGuide(sampleResult("ZoomText"), types.FormatDocx, "learning")
	if err != nil {
		t.Fatalf("SaveGuide: %v", err)
	}

	styles := docPart(t, path, "word/styles.xml")
	if strings.Contains(styles, "003366") {
		t.Error("high contrast headings should be black, not blue")
	}
}
