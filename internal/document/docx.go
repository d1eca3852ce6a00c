// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/myvision/guide-engine/internal/docx"
	"github.com/myvision/guide-engine/pkg/types"
)

const (
	logoWidthInches = 2.0
	greyText        = "666666"
	lightGreyText   = "808080"
	listIndentTwips = 360
)

// renderDocx builds the styled Word document for a generation result.
func (w *Writer) renderDocx(res *types.GenerationResult) ([]byte, error) {
	a := w.cfg.Accessibility
	doc := docx.New(docx.Defaults{
		Font:        a.Font,
		BodySize:    a.BodyFontSize,
		BodyColor:   a.TextColor().Hex(),
		LineSpacing: a.LineSpacing,
		SpaceAfter:  a.ParagraphSpacing,
		Heading1:    docx.HeadingStyle{Size: a.Heading1FontSize, Color: a.HeadingColor().Hex()},
		Heading2:    docx.HeadingStyle{Size: a.Heading2FontSize, Color: a.HeadingColor().Hex()},
		Heading3:    docx.HeadingStyle{Size: a.Heading3FontSize, Color: a.HeadingColor().Hex()},
	})

	w.addHeader(doc, res)
	w.addContent(doc, res.Content)
	w.addFooter(doc)

	return doc.Bytes()
}

// addHeader writes the branded document header: logo when available, centred
// title, organisation line, and the generation details.
func (w *Writer) addHeader(doc *docx.Document, res *types.GenerationResult) {
	a := w.cfg.Accessibility
	b := w.cfg.Branding

	w.addLogo(doc)

	p := doc.AddParagraph().Center().SpaceAfter(6)
	p.AddRun(res.Title).Bold().Size(26).Color(a.HeadingColor().Hex())

	if b.OrganizationName != "" {
		p = doc.AddParagraph().Center().SpaceAfter(12)
		p.AddRun(b.OrganizationName).Italic().Color(greyText)
	}

	details := "Generated: " + res.Metadata.Generated.Format("January 2, 2006")
	if res.Metadata.Topic != "" {
		details += "  •  " + res.Metadata.Topic
	}
	doc.AddParagraph().Center().SpaceAfter(12).
		AddRun(details).Size(a.BodyFontSize - 2).Color(greyText)

	w.addSeparator(doc)
}

// addLogo embeds the configured logo image at the top of the document.
// Reports whether a logo was added; a missing or undecodable file is not an
// error, the document is simply unbranded.
func (w *Writer) addLogo(doc *docx.Document) bool {
	path := w.cfg.Branding.LogoPath
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 {
		return false
	}

	widthEMU := int64(logoWidthInches * docx.EMUPerInch)
	heightEMU := widthEMU * int64(cfg.Height) / int64(cfg.Width)
	doc.AddImage(data, widthEMU, heightEMU).Center().SpaceAfter(6)
	return true
}

// addSeparator writes the decorative dotted rule used between sections.
func (w *Writer) addSeparator(doc *docx.Document) {
	doc.AddParagraph().Center().SpaceAfter(12).
		AddRun(strings.Repeat("●", 25)).Color(w.cfg.Accessibility.AccentColor().Hex())
}

// addContent translates the constrained Markdown subset into styled
// paragraphs, line by line.
func (w *Writer) addContent(doc *docx.Document, content string) {
	a := w.cfg.Accessibility

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			doc.AddParagraph().SpaceAfter(a.ParagraphSpacing)

		case strings.HasPrefix(trimmed, "### "):
			addTextRuns(doc.AddParagraph().Style("Heading3"), strings.TrimPrefix(trimmed, "### "))

		case strings.HasPrefix(trimmed, "## "):
			addTextRuns(doc.AddParagraph().Style("Heading2"), strings.TrimPrefix(trimmed, "## "))

		case strings.HasPrefix(trimmed, "# "):
			addTextRuns(doc.AddParagraph().Style("Heading1"), strings.TrimPrefix(trimmed, "# "))

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			p := doc.AddParagraph().Style("ListBullet").Indent(listIndentTwips).SpaceAfter(3)
			addTextRuns(p, "• "+trimmed[2:])

		case isNumberedItem(trimmed):
			p := doc.AddParagraph().Style("ListNumber").Indent(listIndentTwips).SpaceAfter(3)
			addTextRuns(p, trimmed)

		default:
			addTextRuns(doc.AddParagraph(), trimmed)
		}
	}
}

// isNumberedItem reports whether a line starts a numbered list entry like
// "1. " or "12. ".
func isNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(line) && line[i] == '.' && line[i+1] == ' '
}

// addTextRuns splits text on ** markers into alternating regular and bold
// runs. Unbalanced markers degrade gracefully: the trailing segment keeps the
// emphasis state it opened with.
func addTextRuns(p *docx.Paragraph, text string) {
	segments := strings.Split(text, "**")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		run := p.AddRun(seg)
		if i%2 == 1 {
			run.Bold()
		}
	}
}

// addFooter writes the organisation contact block and the accessibility
// disclosure.
func (w *Writer) addFooter(doc *docx.Document) {
	a := w.cfg.Accessibility
	b := w.cfg.Branding

	doc.AddParagraph().SpaceAfter(6)
	w.addSeparator(doc)

	var lines []string
	if b.OrganizationName != "" {
		lines = append(lines, b.OrganizationName)
	}
	if b.ContactEmail != "" {
		lines = append(lines, "Email: "+b.ContactEmail)
	}
	if b.Website != "" {
		lines = append(lines, "Web: "+b.Website)
	}
	for _, line := range lines {
		doc.AddParagraph().Center().SpaceAfter(2).
			AddRun(line).Size(a.BodyFontSize - 2).Color(greyText)
	}

	disclosure := fmt.Sprintf(
		"This document has been formatted for accessibility with large print (%dpt minimum font size)",
		a.BodyFontSize)
	doc.AddParagraph().Center().SpaceBefore(6).
		AddRun(disclosure).Italic().Size(a.BodyFontSize - 4).Color(lightGreyText)
}
