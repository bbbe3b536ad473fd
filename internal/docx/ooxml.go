// Package docx serializes styled paragraphs as a minimal OOXML
// (WordprocessingML) package. A .docx file is a zip archive of XML
// parts; only the elements this formatter emits are modeled here.
package docx

import "encoding/xml"

const (
	nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Note on tags: encoding/xml emits prefixed names such as "w:p"
// verbatim on marshal, so the structures below declare the w: prefix
// directly and bind it once on the part root.

type document struct {
	XMLName xml.Name `xml:"w:document"`
	NsW     string   `xml:"xmlns:w,attr"`
	NsR     string   `xml:"xmlns:r,attr"`
	Body    docBody  `xml:"w:body"`
}

type docBody struct {
	Paragraphs []paragraph `xml:"w:p"`
	Section    sectProps   `xml:"w:sectPr"`
}

type paragraph struct {
	Props *paraProps `xml:"w:pPr"`
	Runs  []run      `xml:"w:r"`
}

type paraProps struct {
	Spacing *spacing `xml:"w:spacing"`
	Indent  *indent  `xml:"w:ind"`
	Justify *valAttr `xml:"w:jc"`
}

type spacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// indent measures in twips. FirstLine and Hanging are mutually
// exclusive; Hanging expresses a negative first-line indent.
type indent struct {
	Left      string `xml:"w:left,attr,omitempty"`
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
	Hanging   string `xml:"w:hanging,attr,omitempty"`
}

type valAttr struct {
	Val string `xml:"w:val,attr"`
}

type run struct {
	Props *runProps  `xml:"w:rPr"`
	Break *pageBreak `xml:"w:br"`
	Field *fieldChar `xml:"w:fldChar"`
	Instr *instrText `xml:"w:instrText"`
	Text  *runText   `xml:"w:t"`
}

type runProps struct {
	Fonts  *runFonts `xml:"w:rFonts"`
	Bold   *toggle   `xml:"w:b"`
	Italic *toggle   `xml:"w:i"`
	Size   *valAttr  `xml:"w:sz"`
}

type runFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type toggle struct{}

type pageBreak struct {
	Type string `xml:"w:type,attr"`
}

type fieldChar struct {
	Type string `xml:"w:fldCharType,attr"`
}

type instrText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type runText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type sectProps struct {
	Header  *headerRef `xml:"w:headerReference"`
	PageSz  pageSize   `xml:"w:pgSz"`
	PageMar pageMargin `xml:"w:pgMar"`
}

type headerRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type pageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type pageMargin struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

type header struct {
	XMLName    xml.Name    `xml:"w:hdr"`
	NsW        string      `xml:"xmlns:w,attr"`
	NsR        string      `xml:"xmlns:r,attr"`
	Paragraphs []paragraph `xml:"w:p"`
}

// Static package parts. Relationship IDs here must line up with the
// headerReference emitted in the section properties.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>
</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>
</Relationships>`
)
