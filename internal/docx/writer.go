package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"apafmt/internal/style"
)

// Options control document-wide defaults.
type Options struct {
	Font   string // font family, default Times New Roman
	SizePt int    // point size, default 12
}

// Document accumulates styled paragraphs and serializes them as a
// WordprocessingML package. It implements the document.Renderer
// contract: double line spacing, zero spacing before/after, one-inch
// margins, and a right-aligned PAGE field in the running header are
// applied document-wide.
type Document struct {
	opts       Options
	paragraphs []paragraph
}

func New(opts Options) *Document {
	if opts.Font == "" {
		opts.Font = "Times New Roman"
	}
	if opts.SizePt <= 0 {
		opts.SizePt = 12
	}
	return &Document{opts: opts}
}

// AddParagraph appends one styled paragraph. A directive with a Lead
// segment becomes two runs: the bold lead followed by the plain text.
func (d *Document) AddParagraph(dir style.Directive) {
	p := paragraph{Props: d.paraProps(dir)}
	if dir.Lead != "" {
		p.Runs = append(p.Runs,
			d.textRun(dir.Lead, true, dir.LeadItalic),
			d.textRun(dir.Text, dir.Bold, dir.Italic),
		)
	} else if dir.Text != "" {
		p.Runs = append(p.Runs, d.textRun(dir.Text, dir.Bold, dir.Italic))
	}
	d.paragraphs = append(d.paragraphs, p)
}

// AddPageBreak appends a paragraph holding a single page-break run.
func (d *Document) AddPageBreak() {
	d.paragraphs = append(d.paragraphs, paragraph{
		Runs: []run{{Break: &pageBreak{Type: "page"}}},
	})
}

func (d *Document) paraProps(dir style.Directive) *paraProps {
	props := &paraProps{
		Spacing: &spacing{Before: "0", After: "0", Line: "480", LineRule: "auto"},
	}
	if dir.Alignment == style.AlignCenter || dir.Alignment == style.AlignRight {
		props.Justify = &valAttr{Val: string(dir.Alignment)}
	}
	if dir.LeftIndent != 0 || dir.FirstLineIndent != 0 {
		ind := &indent{}
		if dir.LeftIndent != 0 {
			ind.Left = twips(dir.LeftIndent)
		}
		switch {
		case dir.FirstLineIndent > 0:
			ind.FirstLine = twips(dir.FirstLineIndent)
		case dir.FirstLineIndent < 0:
			ind.Hanging = twips(-dir.FirstLineIndent)
		}
		props.Indent = ind
	}
	return props
}

func (d *Document) textRun(text string, bold, italic bool) run {
	props := &runProps{
		Fonts: &runFonts{ASCII: d.opts.Font, HAnsi: d.opts.Font},
		Size:  &valAttr{Val: strconv.Itoa(d.opts.SizePt * 2)}, // half-points
	}
	if bold {
		props.Bold = &toggle{}
	}
	if italic {
		props.Italic = &toggle{}
	}
	t := &runText{Value: text}
	if text != strings.TrimSpace(text) {
		t.Space = "preserve"
	}
	return run{Props: props, Text: t}
}

// Bytes serializes the full package into memory.
func (d *Document) Bytes() ([]byte, error) {
	docPart, err := marshalPart(d.documentPart())
	if err != nil {
		return nil, err
	}
	hdrPart, err := marshalPart(d.headerPart())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"word/document.xml", docPart},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/header1.xml", hdrPart},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save persists the package to path atomically: the bytes land in a
// temp file in the target directory first and are renamed into place,
// so a failure never leaves a partial document behind.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("failed to assemble document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".apafmt-*.docx")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (d *Document) documentPart() any {
	return &document{
		NsW: nsMain,
		NsR: nsRel,
		Body: docBody{
			Paragraphs: d.paragraphs,
			Section: sectProps{
				Header: &headerRef{Type: "default", ID: "rId1"},
				PageSz: pageSize{W: "12240", H: "15840"},
				PageMar: pageMargin{
					Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
					Header: "720", Footer: "720", Gutter: "0",
				},
			},
		},
	}
}

// headerPart builds the running header: a right-aligned PAGE field that
// the word processor keeps current on every page.
func (d *Document) headerPart() any {
	return &header{
		NsW: nsMain,
		NsR: nsRel,
		Paragraphs: []paragraph{{
			Props: &paraProps{Justify: &valAttr{Val: "right"}},
			Runs: []run{
				{Field: &fieldChar{Type: "begin"}},
				{Instr: &instrText{Space: "preserve", Value: " PAGE "}},
				{Field: &fieldChar{Type: "end"}},
			},
		}},
	}
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func twips(inches float64) string {
	return strconv.Itoa(int(math.Round(inches * 1440)))
}
