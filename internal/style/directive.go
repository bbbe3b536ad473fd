package style

// Alignment selects horizontal paragraph alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Directive is one fully resolved layout instruction, ready for a
// renderer. Indents are in inches; a negative FirstLineIndent means a
// hanging indent. The zero value renders as an empty paragraph.
//
// Lead carries the run-in heading segment for merged level 4/5
// headings. A renderer emits it as its own bold run (italic when
// LeadItalic) ahead of Text; Bold and Italic then apply to Text only.
type Directive struct {
	Text       string
	Lead       string
	LeadItalic bool

	Alignment Alignment
	Bold      bool
	Italic    bool

	LeftIndent      float64
	FirstLineIndent float64
}

// TitleData carries the title-page fields. Title is the only required
// field; empty optional fields are skipped on the title page.
type TitleData struct {
	Title       string `yaml:"title" json:"title"`
	Author      string `yaml:"author,omitempty" json:"author,omitempty"`
	Institution string `yaml:"institution,omitempty" json:"institution,omitempty"`
	Course      string `yaml:"course,omitempty" json:"course,omitempty"`
	Instructor  string `yaml:"instructor,omitempty" json:"instructor,omitempty"`
	Date        string `yaml:"date,omitempty" json:"date,omitempty"`
}
