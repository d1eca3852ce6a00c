// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes Word documents directly as OOXML packages: a zip
// archive holding document.xml, styles.xml, relationship parts, and any
// embedded media. The builder covers exactly what guide documents need:
// styled paragraphs, character runs, and inline images.
//
// Measurements follow OOXML conventions. Font sizes are given in points and
// written in half-points, paragraph spacing in twentieths of a point, indents
// in twips, and image extents in EMUs (914400 per inch).
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// EMUPerInch converts inches to English Metric Units for image extents.
const EMUPerInch = 914400

// HeadingStyle sets the size and colour for one heading level.
type HeadingStyle struct {
	Size  int    // points
	Color string // RRGGBB hex
}

// Defaults is the document-wide typography applied through docDefaults and
// the style table before any content. Every paragraph inherits from it
// unless a run or paragraph overrides a property.
type Defaults struct {
	Font        string
	BodySize    int    // points
	BodyColor   string // RRGGBB hex
	LineSpacing float64
	SpaceAfter  int // points, after body paragraphs

	Heading1 HeadingStyle
	Heading2 HeadingStyle
	Heading3 HeadingStyle
}

// Document accumulates paragraphs and media, then renders the package with
// Bytes. Not safe for concurrent use.
type Document struct {
	defaults Defaults
	paras    []*Paragraph
	images   []*image
}

type image struct {
	relID     string
	filename  string
	data      []byte
	widthEMU  int64
	heightEMU int64
}

// Paragraph is one block of the document. Chainable setters configure
// paragraph-level properties before runs are added.
type Paragraph struct {
	style       string
	align       string
	indentLeft  int // twips
	spaceBefore int // points, -1 inherits
	spaceAfter  int // points, -1 inherits
	img         *image
	runs        []*Run
}

// Run is a span of text with uniform character formatting.
type Run struct {
	text   string
	bold   bool
	italic bool
	size   int    // points, 0 inherits
	color  string // RRGGBB hex, empty inherits
	font   string // empty inherits
}

// New returns an empty document with the given typography defaults.
func New(defaults Defaults) *Document {
	return &Document{defaults: defaults}
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{spaceBefore: -1, spaceAfter: -1}
	d.paras = append(d.paras, p)
	return p
}

// AddImage appends a paragraph holding one inline PNG at the given extent.
func (d *Document) AddImage(data []byte, widthEMU, heightEMU int64) *Paragraph {
	img := &image{
		relID:     fmt.Sprintf("rIdImg%d", len(d.images)+1),
		filename:  fmt.Sprintf("image%d.png", len(d.images)+1),
		data:      data,
		widthEMU:  widthEMU,
		heightEMU: heightEMU,
	}
	d.images = append(d.images, img)

	p := d.AddParagraph()
	p.img = img
	return p
}

// Style assigns a paragraph style from the style table (Heading1, Heading2,
// Heading3, ListBullet, ListNumber).
func (p *Paragraph) Style(name string) *Paragraph {
	p.style = name
	return p
}

// Center centres the paragraph.
func (p *Paragraph) Center() *Paragraph {
	p.align = "center"
	return p
}

// Indent sets the left indent in twips.
func (p *Paragraph) Indent(twips int) *Paragraph {
	p.indentLeft = twips
	return p
}

// SpaceBefore overrides the space before the paragraph, in points.
func (p *Paragraph) SpaceBefore(points int) *Paragraph {
	p.spaceBefore = points
	return p
}

// SpaceAfter overrides the space after the paragraph, in points.
func (p *Paragraph) SpaceAfter(points int) *Paragraph {
	p.spaceAfter = points
	return p
}

// AddRun appends a text run to the paragraph.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// Bold makes the run bold.
func (r *Run) Bold() *Run {
	r.bold = true
	return r
}

// Italic makes the run italic.
func (r *Run) Italic() *Run {
	r.italic = true
	return r
}

// Size overrides the run font size in points.
func (r *Run) Size(points int) *Run {
	r.size = points
	return r
}

// Color overrides the run colour (RRGGBB hex).
func (r *Run) Color(hex string) *Run {
	r.color = hex
	return r
}

// Font overrides the run typeface.
func (r *Run) Font(name string) *Run {
	r.font = name
	return r
}

// Bytes renders the document as a complete .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", d.contentTypes()},
		{"_rels/.rels", []byte(rootRels)},
		{"word/document.xml", d.documentXML()},
		{"word/styles.xml", d.stylesXML()},
		{"word/_rels/document.xml.rels", d.documentRels()},
	}
	for _, img := range d.images {
		parts = append(parts, struct {
			name    string
			content []byte
		}{"word/media/" + img.filename, img.data})
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const rootRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

func (d *Document) contentTypes() []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	if len(d.images) > 0 {
		sb.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	}
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	sb.WriteString(`</Types>`)
	return []byte(sb.String())
}

func (d *Document) documentRels() []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for _, img := range d.images {
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/%s"/>`, img.relID, img.filename)
	}
	sb.WriteString(`</Relationships>`)
	return []byte(sb.String())
}

// halfPoints converts points to the half-point units of w:sz.
func halfPoints(points int) int { return points * 2 }

// twentieths converts points to the twentieth-point units of w:spacing.
func twentieths(points int) int { return points * 20 }

func (d *Document) stylesXML() []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	// Document defaults: every style and paragraph inherits these.
	line := int(d.defaults.LineSpacing * 240)
	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`+
		`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`+
		`<w:color w:val="%s"/>`+
		`</w:rPr></w:rPrDefault>`+
		`<w:pPrDefault><w:pPr><w:spacing w:after="%d" w:line="%d" w:lineRule="auto"/></w:pPr></w:pPrDefault>`+
		`</w:docDefaults>`,
		d.defaults.Font, d.defaults.Font, d.defaults.Font,
		halfPoints(d.defaults.BodySize), halfPoints(d.defaults.BodySize),
		d.defaults.BodyColor,
		twentieths(d.defaults.SpaceAfter), line)

	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)

	headings := []struct {
		id    string
		style HeadingStyle
	}{
		{"Heading1", d.defaults.Heading1},
		{"Heading2", d.defaults.Heading2},
		{"Heading3", d.defaults.Heading3},
	}
	for i, h := range headings {
		fmt.Fprintf(&sb, `<w:style w:type="paragraph" w:styleId="%s">`+
			`<w:name w:val="heading %d"/><w:basedOn w:val="Normal"/>`+
			`<w:pPr><w:spacing w:before="360" w:after="240"/><w:outlineLvl w:val="%d"/></w:pPr>`+
			`<w:rPr><w:b/><w:sz w:val="%d"/><w:szCs w:val="%d"/><w:color w:val="%s"/></w:rPr>`+
			`</w:style>`,
			h.id, i+1, i, halfPoints(h.style.Size), halfPoints(h.style.Size), h.style.Color)
	}

	for _, list := range []struct{ id, name string }{
		{"ListBullet", "List Bullet"},
		{"ListNumber", "List Number"},
	} {
		fmt.Fprintf(&sb, `<w:style w:type="paragraph" w:styleId="%s">`+
			`<w:name w:val="%s"/><w:basedOn w:val="Normal"/>`+
			`<w:pPr><w:ind w:left="360"/><w:spacing w:after="60"/></w:pPr>`+
			`</w:style>`, list.id, list.name)
	}

	sb.WriteString(`</w:styles>`)
	return []byte(sb.String())
}

func (d *Document) documentXML() []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	sb.WriteString(`<w:body>`)

	for _, p := range d.paras {
		d.writeParagraph(&sb, p)
	}

	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return []byte(sb.String())
}

func (d *Document) writeParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString(`<w:p>`)

	var pPr strings.Builder
	if p.style != "" {
		fmt.Fprintf(&pPr, `<w:pStyle w:val="%s"/>`, p.style)
	}
	if p.spaceBefore >= 0 || p.spaceAfter >= 0 {
		pPr.WriteString(`<w:spacing`)
		if p.spaceBefore >= 0 {
			fmt.Fprintf(&pPr, ` w:before="%d"`, twentieths(p.spaceBefore))
		}
		if p.spaceAfter >= 0 {
			fmt.Fprintf(&pPr, ` w:after="%d"`, twentieths(p.spaceAfter))
		}
		pPr.WriteString(`/>`)
	}
	if p.indentLeft > 0 {
		fmt.Fprintf(&pPr, `<w:ind w:left="%d"/>`, p.indentLeft)
	}
	if p.align != "" {
		fmt.Fprintf(&pPr, `<w:jc w:val="%s"/>`, p.align)
	}
	if pPr.Len() > 0 {
		sb.WriteString(`<w:pPr>`)
		sb.WriteString(pPr.String())
		sb.WriteString(`</w:pPr>`)
	}

	if p.img != nil {
		writeDrawing(sb, p.img)
	}
	for _, r := range p.runs {
		writeRun(sb, r)
	}

	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, r *Run) {
	sb.WriteString(`<w:r>`)

	var rPr strings.Builder
	if r.font != "" {
		fmt.Fprintf(&rPr, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, r.font, r.font)
	}
	if r.bold {
		rPr.WriteString(`<w:b/>`)
	}
	if r.italic {
		rPr.WriteString(`<w:i/>`)
	}
	if r.color != "" {
		fmt.Fprintf(&rPr, `<w:color w:val="%s"/>`, r.color)
	}
	if r.size > 0 {
		fmt.Fprintf(&rPr, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, halfPoints(r.size), halfPoints(r.size))
	}
	if rPr.Len() > 0 {
		sb.WriteString(`<w:rPr>`)
		sb.WriteString(rPr.String())
		sb.WriteString(`</w:rPr>`)
	}

	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escape(r.text))
	sb.WriteString(`</w:t></w:r>`)
}

func writeDrawing(sb *strings.Builder, img *image) {
	fmt.Fprintf(sb, `<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="1" name="%s"/>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic>`+
		`<pic:nvPicPr><pic:cNvPr id="1" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic>`+
		`</a:graphicData></a:graphic>`+
		`</wp:inline></w:drawing></w:r>`,
		img.widthEMU, img.heightEMU, img.filename, img.filename, img.relID, img.widthEMU, img.heightEMU)
}

// escape makes text safe for XML character data and attribute values.
func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
